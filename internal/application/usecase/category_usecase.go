package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/banco-alimentos-api/internal/application/dto"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/entity"
	"github.com/tu-usuario/banco-alimentos-api/internal/domain/repository"
)

// Categorías por defecto del banco de alimentos; se siembran en el primer
// listado si la tabla está vacía.
var defaultCategories = []string{"Fruits", "Vegetables", "Dairy", "Meat", "Grains", "Beverages"}

// CategoryUseCase casos de uso para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List lista categorías; si no hay ninguna, siembra las seis por defecto.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		now := time.Now()
		seeded := make([]*entity.Category, 0, len(defaultCategories))
		for _, name := range defaultCategories {
			seeded = append(seeded, &entity.Category{
				ID:        uuid.New().String(),
				Name:      name,
				CreatedAt: now,
			})
		}
		if err := uc.repo.CreateMany(seeded); err != nil {
			return nil, err
		}
		list = seeded
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt})
	}
	return items, nil
}

// Create crea una categoría; el nombre es único (insensible a mayúsculas).
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	category := &entity.Category{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name, CreatedAt: category.CreatedAt}, nil
}
