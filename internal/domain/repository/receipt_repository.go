package repository

import "github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"

// ReceiptRepository define el puerto de persistencia para las líneas de
// recepción (write-once).
type ReceiptRepository interface {
	Create(receipt *entity.InventoryReceipt) error
	List(limit, offset int) ([]*entity.InventoryReceipt, error)
	ListByBatch(batch string) ([]*entity.InventoryReceipt, error)
	// ListChrono devuelve todas las líneas en orden de creación ascendente;
	// el replayer las pliega junto con las entradas del libro.
	ListChrono() ([]*entity.InventoryReceipt, error)
}
