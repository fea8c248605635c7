package usecase

import (
	"github.com/tu-usuario/banco-alimentos-api/internal/application/dto"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/repository"
)

// TransactionQueryUseCase superficie de consulta del libro de movimientos:
// listado y búsqueda por ID, cada entrada con el nombre de su producto
// resuelto. Solo lectura; no muta el libro.
type TransactionQueryUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionQueryUseCase construye el caso de uso.
func NewTransactionQueryUseCase(repo repository.TransactionRepository) *TransactionQueryUseCase {
	return &TransactionQueryUseCase{repo: repo}
}

// List lista entradas (más recientes primero).
func (uc *TransactionQueryUseCase) List(limit, offset int) (*dto.TransactionListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		items = append(items, ToTransactionResponse(tx))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: len(items)},
	}, nil
}

// GetByID obtiene una entrada por ID.
func (uc *TransactionQueryUseCase) GetByID(id string) (*dto.TransactionResponse, error) {
	tx, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	resp := ToTransactionResponse(tx)
	return &resp, nil
}

// ToTransactionResponse mapea una entrada del libro a su DTO.
func ToTransactionResponse(tx *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          tx.ID,
		ProductID:   tx.ProductID,
		ProductName: tx.ProductName,
		Quantity:    tx.Quantity,
		Unit:        string(tx.Unit),
		Operation:   tx.Operation,
		Purpose:     tx.Purpose,
		Batch:       tx.Batch,
		Status:      tx.Status,
		CreatedBy:   tx.CreatedBy,
		CreatedAt:   tx.CreatedAt,
	}
}
