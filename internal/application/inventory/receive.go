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

// ReceiveLine una línea (producto, cantidad, unidad) de una recepción en lote.
// Unit vacía equivale a pcs.
type ReceiveLine struct {
	ProductID string
	Quantity  decimal.Decimal
	Unit      inventory.Unit
}

// ReceiveInput entrada del procesador de recepciones en lote.
type ReceiveInput struct {
	Lines   []ReceiveLine
	Purpose string
	Batch   string
	UserID  string
}

// ProductSummary resumen por producto de una recepción: cantidad agregada en
// unidades base y total resultante.
type ProductSummary struct {
	ProductID   string
	Name        string
	Added       decimal.Decimal
	NewQuantity decimal.Decimal
}

// ReceiveResult la entrada agregada del libro más las líneas de recepción.
type ReceiveResult struct {
	Entry    *entity.Transaction
	Receipts []*entity.InventoryReceipt
	Products []ProductSummary
}

// ReceiveBulk procesa todas las líneas dentro de UNA unidad atómica: si
// cualquier línea referencia un producto inexistente o lleva cantidad no
// positiva, el lote entero se revierte y ningún efecto parcial es observable.
// Por cada línea válida suma la cantidad en unidades base al producto y
// escribe una línea InventoryReceipt; al final crea exactamente UNA entrada
// Receive en el libro que resume el lote (el detalle por producto queda en las
// líneas de recepción, la entrada agregada solo conserva la referencia al lote).
func (uc *StockUseCase) ReceiveBulk(ctx context.Context, in ReceiveInput) (*ReceiveResult, error) {
	if len(in.Lines) == 0 || in.Purpose == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, line := range in.Lines {
		if line.ProductID == "" || !line.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	result := &ReceiveResult{}
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
		receiptRepo repository.ReceiptRepository,
	) error {
		total := decimal.Zero
		for _, line := range in.Lines {
			unit := line.Unit
			if unit == "" {
				unit = inventory.UnitPcs
			}
			locked, err := productRepo.GetForUpdate(line.ProductID)
			if err != nil {
				return err
			}
			if locked == nil {
				return domain.ErrNotFound
			}
			added := inventory.BaseQuantity(line.Quantity, unit)
			newQty := locked.Quantity.Add(added)
			if err := productRepo.UpdateQuantity(locked.ID, newQty); err != nil {
				return err
			}
			receipt := &entity.InventoryReceipt{
				ID:          uuid.New().String(),
				ProductID:   locked.ID,
				ProductName: locked.Name,
				Quantity:    added, // ya en unidades base: una sola conversión
				Unit:        unit,
				Purpose:     in.Purpose,
				Batch:       in.Batch,
				ReceivedBy:  in.UserID,
				CreatedAt:   now,
			}
			if err := receiptRepo.Create(receipt); err != nil {
				return err
			}
			result.Receipts = append(result.Receipts, receipt)
			result.Products = append(result.Products, ProductSummary{
				ProductID:   locked.ID,
				Name:        locked.Name,
				Added:       added,
				NewQuantity: newQty,
			})
			total = total.Add(added)
		}

		// Entrada agregada del lote: sin referencia de producto (el replayer
		// la ignora y pliega las líneas de recepción en su lugar).
		entry := &entity.Transaction{
			ID:        uuid.New().String(),
			Quantity:  total,
			Unit:      inventory.UnitPcs,
			Operation: entity.OperationReceive,
			Purpose:   in.Purpose,
			Batch:     in.Batch,
			Status:    entity.StatusCompleted,
			CreatedBy: in.UserID,
			CreatedAt: now,
		}
		if err := txRepo.Create(entry); err != nil {
			return err
		}
		result.Entry = entry
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return result, nil
}
