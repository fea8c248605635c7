package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/inventory"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación de ReceiptRepository sobre PostgreSQL (usable con
// pool o tx). Las líneas de recepción son write-once: solo INSERT y SELECT.
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador. Pasar pool o tx (Querier).
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create inserta una línea de recepción. Quantity ya viene en unidades base.
func (r *ReceiptRepo) Create(receipt *entity.InventoryReceipt) error {
	query := `
		INSERT INTO inventory_receipts (id, product_id, quantity, unit, purpose, batch, received_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.ProductID, receipt.Quantity, string(receipt.Unit),
		receipt.Purpose, receipt.Batch, receipt.ReceivedBy, receipt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

const receiptSelect = `
	SELECT r.id, r.product_id, COALESCE(p.name, ''), r.quantity, r.unit,
	       r.purpose, r.batch, COALESCE(r.received_by, ''), r.created_at
	FROM inventory_receipts r
	LEFT JOIN products p ON p.id = r.product_id`

// List devuelve líneas más recientes primero, con nombre de producto resuelto.
func (r *ReceiptRepo) List(limit, offset int) ([]*entity.InventoryReceipt, error) {
	query := receiptSelect + ` ORDER BY r.created_at DESC, r.seq DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	return scanReceipts(rows)
}

// ListByBatch devuelve las líneas de un lote en orden de inserción (para el
// comprobante PDF del lote).
func (r *ReceiptRepo) ListByBatch(batch string) ([]*entity.InventoryReceipt, error) {
	query := receiptSelect + ` WHERE r.batch = $1 ORDER BY r.created_at ASC, r.seq ASC`
	rows, err := r.q.Query(context.Background(), query, batch)
	if err != nil {
		return nil, fmt.Errorf("list receipts by batch: %w", err)
	}
	return scanReceipts(rows)
}

// ListChrono devuelve todas las líneas en orden de creación ascendente; el
// replayer las pliega junto con las entradas del libro.
func (r *ReceiptRepo) ListChrono() ([]*entity.InventoryReceipt, error) {
	query := receiptSelect + ` ORDER BY r.created_at ASC, r.seq ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list receipts chrono: %w", err)
	}
	return scanReceipts(rows)
}

func scanReceipts(rows pgx.Rows) ([]*entity.InventoryReceipt, error) {
	defer rows.Close()
	var list []*entity.InventoryReceipt
	for rows.Next() {
		var rec entity.InventoryReceipt
		var unit string
		if err := rows.Scan(&rec.ID, &rec.ProductID, &rec.ProductName, &rec.Quantity, &unit,
			&rec.Purpose, &rec.Batch, &rec.ReceivedBy, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		rec.Unit = inventory.Unit(unit)
		list = append(list, &rec)
	}
	return list, rows.Err()
}
