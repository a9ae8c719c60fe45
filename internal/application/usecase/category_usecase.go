package usecase

import (
	"github.com/google/uuid"
	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

// CategoryUseCase CRUD de colecciones. El listado es público; las mutaciones
// son de administración. Los productos referencian la categoría por etiqueta
// de texto, así que borrar una categoría no toca productos.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List() ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Slug:        c.Slug,
			Description: c.Description,
			ImageURL:    c.ImageURL,
		})
	}
	return items, nil
}

// Create valida y persiste una categoría nueva; devuelve el ID generado.
func (uc *CategoryUseCase) Create(in dto.UpsertCategoryRequest) (string, error) {
	if err := in.Validate(); err != nil {
		return "", err
	}
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
	if err := uc.repo.Create(category); err != nil {
		return "", err
	}
	return category.ID, nil
}

// Update reemplaza la categoría completa.
func (uc *CategoryUseCase) Update(id string, in dto.UpsertCategoryRequest) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return uc.repo.Update(&entity.Category{
		ID:          id,
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	})
}

// Delete borra la categoría. Idempotente.
func (uc *CategoryUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}
