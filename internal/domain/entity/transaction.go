package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/banco-alimentos-api/internal/domain/inventory"
)

// Operaciones que afectan stock.
const (
	OperationReceive    = "Receive"
	OperationDistribute = "Distribute"
)

// Estados de una transacción. La máquina de estados es
// pending -> completed (camino normal, fijado atómicamente al crear) o
// pending -> failed (fallo de validación/consistencia durante la creación).
// completed es terminal: una entrada completada nunca se modifica.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Transaction es una entrada del libro de movimientos (append-only, la fuente
// de verdad del sistema). Quantity es la cantidad declarada; la conversión a
// unidades base se recalcula desde Unit con la tabla fija.
//
// Las entradas agregadas de un lote de recepción no referencian producto
// (ProductID vacío); el detalle por producto vive en InventoryReceipt.
type Transaction struct {
	ID        string
	ProductID string
	Quantity  decimal.Decimal
	Unit      inventory.Unit
	Operation string
	Purpose   string
	Batch     string
	Status    string
	CreatedBy string
	CreatedAt time.Time

	// ProductName se resuelve al leer (join con products), análogo al
	// populate del origen; no se persiste en la tabla de transacciones.
	ProductName string
}

// BaseDelta devuelve el efecto de la entrada sobre el stock en unidades base,
// con signo positivo para Receive y negativo para Distribute.
func (t *Transaction) BaseDelta() decimal.Decimal {
	base := inventory.BaseQuantity(t.Quantity, t.Unit)
	if t.Operation == OperationDistribute {
		return base.Neg()
	}
	return base
}
