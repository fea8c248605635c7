package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/banco-alimentos-api/internal/domain"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/inventory"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/repository"
)

// DistributeLine una línea de una distribución en lote.
type DistributeLine struct {
	ProductID string
	Quantity  decimal.Decimal
	Unit      inventory.Unit
}

// DistributeInput entrada para distribuir varios productos bajo un mismo
// propósito y lote.
type DistributeInput struct {
	Lines   []DistributeLine
	Purpose string
	Batch   string
	UserID  string
}

// DistributeBulk aplica N líneas Distribute dentro de UNA unidad atómica, con
// las mismas reglas que ApplyOperation (bloqueo de fila, stock nunca
// negativo). Cada línea produce su propia entrada Distribute en el libro; si
// alguna línea falla, el lote entero se revierte.
func (uc *StockUseCase) DistributeBulk(ctx context.Context, in DistributeInput) ([]*entity.Transaction, error) {
	if len(in.Lines) == 0 || in.Purpose == "" || in.Batch == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.ProductID == "" || !line.Quantity.GreaterThan(decimal.Zero) || line.Unit == "" {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	var created []*entity.Transaction
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
		_ repository.ReceiptRepository,
	) error {
		for _, line := range in.Lines {
			locked, err := productRepo.GetForUpdate(line.ProductID)
			if err != nil {
				return err
			}
			if locked == nil {
				return domain.ErrNotFound
			}
			base := inventory.BaseQuantity(line.Quantity, line.Unit)
			if locked.Quantity.LessThan(base) {
				return &domain.InsufficientStockError{
					ProductID: locked.ID,
					Available: locked.Quantity,
					Requested: base,
				}
			}
			if err := productRepo.UpdateQuantity(locked.ID, locked.Quantity.Sub(base)); err != nil {
				return err
			}
			entry := &entity.Transaction{
				ID:          uuid.New().String(),
				ProductID:   locked.ID,
				Quantity:    line.Quantity,
				Unit:        line.Unit,
				Operation:   entity.OperationDistribute,
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
			created = append(created, entry)
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return created, nil
}
