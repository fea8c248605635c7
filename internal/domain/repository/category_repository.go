package repository

import "github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	CreateMany(categories []*entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	List() ([]*entity.Category, error)
}
