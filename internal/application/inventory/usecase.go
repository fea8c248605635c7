package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/banco-alimentos-api/internal/domain"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/inventory"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/repository"
)

// StockUseCase es el mutador de stock: aplica operaciones Receive/Distribute
// de forma transaccional, con bloqueo de fila (SELECT FOR UPDATE) para que dos
// operaciones concurrentes sobre el mismo producto se serialicen y no haya
// lost updates. Cada operación crea su entrada en el libro y actualiza la
// cantidad del producto en la misma unidad atómica.
type StockUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, productRepo: productRepo, txRepo: txRepo}
}

// OperationInput entrada para aplicar una operación de stock.
type OperationInput struct {
	ProductID string
	Quantity  decimal.Decimal
	Unit      inventory.Unit
	Operation string
	Purpose   string
	Batch     string
	UserID    string
}

// ApplyOperation valida la entrada, resuelve el producto y aplica el efecto
// dentro de una transacción: bloquea la fila del producto, calcula el delta en
// unidades base (positivo Receive, negativo Distribute), rechaza Distribute
// que dejaría stock negativo y persiste {nueva cantidad, entrada completed}
// como unidad atómica. Devuelve la entrada creada.
func (uc *StockUseCase) ApplyOperation(ctx context.Context, in OperationInput) (*entity.Transaction, error) {
	if err := validateOperation(in); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, classify(err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var created *entity.Transaction
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
		_ repository.ReceiptRepository,
	) error {
		locked, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if locked == nil {
			return domain.ErrNotFound
		}
		base := inventory.BaseQuantity(in.Quantity, in.Unit)
		delta := base
		if in.Operation == entity.OperationDistribute {
			if locked.Quantity.LessThan(base) {
				return &domain.InsufficientStockError{
					ProductID: locked.ID,
					Available: locked.Quantity,
					Requested: base,
				}
			}
			delta = base.Neg()
		}
		if err := productRepo.UpdateQuantity(in.ProductID, locked.Quantity.Add(delta)); err != nil {
			return err
		}
		entry := &entity.Transaction{
			ID:          uuid.New().String(),
			ProductID:   in.ProductID,
			Quantity:    in.Quantity,
			Unit:        in.Unit,
			Operation:   in.Operation,
			Purpose:     in.Purpose,
			Batch:       in.Batch,
			Status:      entity.StatusCompleted,
			CreatedBy:   in.UserID,
			CreatedAt:   now,
			ProductName: locked.Name,
		}
		if err := txRepo.Create(entry); err != nil {
			return err
		}
		created = entry
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			// Rastro de auditoría: la entrada queda como failed fuera de la
			// unidad atómica. No afecta cantidades ni al replay (que solo
			// pliega entradas completed).
			uc.recordFailed(in, now)
		}
		return nil, classify(err)
	}
	return created, nil
}

func validateOperation(in OperationInput) error {
	if in.ProductID == "" {
		return domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if in.Unit == "" {
		return domain.ErrInvalidInput
	}
	if in.Purpose == "" {
		return domain.ErrInvalidInput
	}
	if in.Operation != entity.OperationReceive && in.Operation != entity.OperationDistribute {
		return domain.ErrInvalidInput
	}
	return nil
}

// recordFailed persiste la entrada rechazada con status failed (mejor
// esfuerzo; si también falla no hay nada que revertir).
func (uc *StockUseCase) recordFailed(in OperationInput, now time.Time) {
	_ = uc.txRepo.Create(&entity.Transaction{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		Unit:      in.Unit,
		Operation: in.Operation,
		Purpose:   in.Purpose,
		Batch:     in.Batch,
		Status:    entity.StatusFailed,
		CreatedBy: in.UserID,
		CreatedAt: now,
	})
}

// classify separa los errores de dominio (se propagan tal cual) de los fallos
// de la unidad atómica, que se reportan como ErrConsistency: nada parcial
// quedó persistido y reintentar la operación completa es seguro.
func classify(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrInsufficientStock):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrConsistency, err)
	}
}
