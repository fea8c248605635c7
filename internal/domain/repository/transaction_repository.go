package repository

import "github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"

// TransactionRepository define el puerto de persistencia para el libro de
// movimientos. El libro es append-only: no hay Update ni Delete; una entrada
// completed es inmutable.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	// GetByID resuelve además el nombre del producto (snapshot de lectura).
	GetByID(id string) (*entity.Transaction, error)
	// List devuelve entradas en orden cronológico descendente, con nombre de
	// producto resuelto, para la superficie de consulta.
	List(limit, offset int) ([]*entity.Transaction, error)
	// ListCompletedChrono devuelve todas las entradas completed en orden de
	// creación ascendente (desempate: orden de inserción). Solo la usa el
	// replayer y debe leerse dentro de la transacción del replay.
	ListCompletedChrono() ([]*entity.Transaction, error)
}
