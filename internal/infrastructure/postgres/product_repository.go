package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/banco-alimentos-api/internal/domain"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/repository"
	"github.com/tu-usuario/banco-alimentos-api/pkg/normalize"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, category_id, name, description, image, quantity, created_at, updated_at`

// Create persiste un nuevo producto. Quantity inicia en 0; name_normalized
// alimenta la búsqueda insensible a acentos.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, category_id, name, name_normalized, description, image, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.Name, normalize.Fold(product.Name),
		product.Description, product.Image, product.Quantity, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetForUpdate obtiene un producto bloqueando su fila (SELECT FOR UPDATE).
// Solo tiene sentido dentro de una transacción: serializa lecturas-modificación
// concurrentes del mismo producto.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Image,
		&p.Quantity, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Update actualiza los datos administrativos del producto. No toca Quantity:
// el stock se modifica solo vía el motor de inventario.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET category_id = $2, name = $3, name_normalized = $4, description = $5, image = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CategoryID, product.Name, normalize.Fold(product.Name),
		product.Description, product.Image, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity escribe solo la cantidad (usado por el motor de inventario).
func (r *ProductRepo) UpdateQuantity(id string, quantity decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// ResetQuantities pone todas las cantidades en cero (primer paso del replay).
func (r *ProductRepo) ResetQuantities() (int, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = 0, updated_at = now()`)
	if err != nil {
		return 0, fmt.Errorf("reset quantities: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

// List lista productos con paginación, más recientes primero.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return r.scanMany(rows)
}

// Search busca por nombre plegado (minúsculas y sin acentos); el caller pliega
// el término con normalize.Fold.
func (r *ProductRepo) Search(nameNormalized string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name_normalized LIKE '%' || $1 || '%' ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, nameNormalized)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return r.scanMany(rows)
}

func (r *ProductRepo) scanMany(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &p.Image,
			&p.Quantity, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
