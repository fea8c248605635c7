package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate y UpdateQuantity solo deben usarse dentro de una transacción
// (vía TxRunner); son el mecanismo de serialización de escrituras de stock.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) para que
	// dos operaciones concurrentes sobre el mismo producto se serialicen.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity escribe solo la cantidad (usado por el motor de inventario).
	UpdateQuantity(id string, quantity decimal.Decimal) error
	// ResetQuantities pone todas las cantidades en cero y devuelve cuántos
	// productos fueron afectados (usado por el replayer).
	ResetQuantities() (int, error)
	List(limit, offset int) ([]*entity.Product, error)
	Search(nameNormalized string) ([]*entity.Product, error)
	Delete(id string) error
}
