package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/banco-alimentos-api/internal/domain/inventory"
)

// InventoryReceipt es la línea por producto de una recepción en lote.
// Se escribe una sola vez y nunca se modifica. Quantity ya está en unidades
// base (la conversión se aplicó al recibir, una sola pasada); Unit conserva
// la unidad declarada solo para mostrarla.
type InventoryReceipt struct {
	ID          string
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal
	Unit        inventory.Unit
	Purpose     string
	Batch       string
	ReceivedBy  string
	CreatedAt   time.Time
}
