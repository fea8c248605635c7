package inventory

import (
	"context"

	"github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la frontera transaccional explícita del
// motor de inventario: todo lo que fn escribe se confirma o se revierte junto,
// incluidos los retornos por error (rollback garantizado en toda salida).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
		receiptRepo repository.ReceiptRepository,
	) error) error
}

// ReceiptPDFGenerator genera el comprobante PDF de un lote de recepción.
type ReceiptPDFGenerator interface {
	GenerateBatchPDF(ctx context.Context, batch string, lines []*entity.InventoryReceipt) ([]byte, error)
}
