package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/banco-alimentos-api/internal/domain"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/repository"
)

// Restore es el replayer del libro: recalcula todas las cantidades desde cero
// plegando el historial completo en orden cronológico. Es la operación de
// reparación ante deriva de la caché y se expone como acción administrativa
// explícita (no se ejecuta tras cada petición; la mutación por operación es el
// camino rápido normal).
//
// Todo ocurre en UNA transacción: o todos los productos alcanzan su valor
// recalculado o ninguno cambia. Ejecutarlo dos veces seguidas sin escrituras
// intermedias produce las mismas cantidades (idempotente).
//
// Se pliegan dos fuentes: las entradas completed del libro que referencian
// producto (el multiplicador se recalcula desde la unidad guardada en la
// entrada) y las líneas InventoryReceipt de los lotes de recepción, cuya
// cantidad ya está en unidades base. Las entradas agregadas de lote no llevan
// producto y no aportan directamente.
func (uc *StockUseCase) Restore(ctx context.Context) (int, error) {
	var reconciled int
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
		receiptRepo repository.ReceiptRepository,
	) error {
		n, err := productRepo.ResetQuantities()
		if err != nil {
			return err
		}
		entries, err := txRepo.ListCompletedChrono()
		if err != nil {
			return err
		}
		receipts, err := receiptRepo.ListChrono()
		if err != nil {
			return err
		}

		totals := make(map[string]decimal.Decimal)
		for _, e := range entries {
			if e.ProductID == "" {
				continue
			}
			totals[e.ProductID] = totals[e.ProductID].Add(e.BaseDelta())
		}
		for _, r := range receipts {
			totals[r.ProductID] = totals[r.ProductID].Add(r.Quantity)
		}

		for id, qty := range totals {
			if err := productRepo.UpdateQuantity(id, qty); err != nil {
				return err
			}
		}
		reconciled = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrConsistency, err)
	}
	return reconciled, nil
}
