package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del banco de alimentos.
// Quantity está en unidades base y es propiedad del motor de inventario:
// solo el mutador de stock y el replayer la modifican; el CRUD administrativo
// edita nombre/descripción/categoría sin tocarla.
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	Description string
	Image       string
	Quantity    decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
