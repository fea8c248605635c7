package inventory

import (
	"context"

	"github.com/tu-usuario/banco-alimentos-api/internal/domain"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/repository"
)

// ReceiptUseCase consulta de líneas de recepción y comprobante PDF por lote.
type ReceiptUseCase struct {
	receiptRepo repository.ReceiptRepository
	pdf         ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(receiptRepo repository.ReceiptRepository, pdf ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{receiptRepo: receiptRepo, pdf: pdf}
}

// List lista líneas de recepción (más recientes primero).
func (uc *ReceiptUseCase) List(limit, offset int) ([]*entity.InventoryReceipt, error) {
	return uc.receiptRepo.List(limit, offset)
}

// BatchPDF genera el comprobante PDF de un lote. ErrNotFound si el lote no
// tiene líneas.
func (uc *ReceiptUseCase) BatchPDF(ctx context.Context, batch string) ([]byte, error) {
	if batch == "" {
		return nil, domain.ErrInvalidInput
	}
	lines, err := uc.receiptRepo.ListByBatch(batch)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.GenerateBatchPDF(ctx, batch, lines)
}
