package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/inventory"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository sobre PostgreSQL
// (usable con pool o tx). El libro es append-only: solo INSERT y SELECT.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create inserta una entrada del libro. product_id se guarda como NULL cuando
// la entrada es agregada de lote (no referencia producto).
func (r *TransactionRepo) Create(t *entity.Transaction) error {
	query := `
		INSERT INTO transactions (id, product_id, quantity, unit, operation, purpose, batch, status, created_by, created_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.ProductID, t.Quantity, string(t.Unit), t.Operation,
		t.Purpose, t.Batch, t.Status, t.CreatedBy, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

const transactionSelect = `
	SELECT t.id, COALESCE(t.product_id, ''), t.quantity, t.unit, t.operation,
	       t.purpose, t.batch, t.status, COALESCE(t.created_by, ''), t.created_at,
	       COALESCE(p.name, '')
	FROM transactions t
	LEFT JOIN products p ON p.id = t.product_id`

// GetByID obtiene una entrada con el nombre del producto resuelto.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	var t entity.Transaction
	var unit string
	err := r.q.QueryRow(context.Background(), transactionSelect+` WHERE t.id = $1`, id).Scan(
		&t.ID, &t.ProductID, &t.Quantity, &unit, &t.Operation,
		&t.Purpose, &t.Batch, &t.Status, &t.CreatedBy, &t.CreatedAt, &t.ProductName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	t.Unit = inventory.Unit(unit)
	return &t, nil
}

// List devuelve entradas más recientes primero, con nombre de producto resuelto.
func (r *TransactionRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	query := transactionSelect + ` ORDER BY t.created_at DESC, t.seq DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return scanTransactions(rows)
}

// ListCompletedChrono devuelve todas las entradas completed en orden de
// creación ascendente; seq desempata timestamps iguales con el orden de
// inserción. Solo la usa el replayer, dentro de su transacción.
func (r *TransactionRepo) ListCompletedChrono() ([]*entity.Transaction, error) {
	query := transactionSelect + ` WHERE t.status = 'completed' ORDER BY t.created_at ASC, t.seq ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list completed transactions: %w", err)
	}
	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]*entity.Transaction, error) {
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		var unit string
		if err := rows.Scan(&t.ID, &t.ProductID, &t.Quantity, &unit, &t.Operation,
			&t.Purpose, &t.Batch, &t.Status, &t.CreatedBy, &t.CreatedAt, &t.ProductName); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Unit = inventory.Unit(unit)
		list = append(list, &t)
	}
	return list, rows.Err()
}
