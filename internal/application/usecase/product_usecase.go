package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo: listado con filtros, lookup
// puntual, lookup masivo y CRUD de administración.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List lista el catálogo con predicados conjuntivos. Los filtros ausentes no
// restringen; el orden es created_at descendente (empates sin orden garantizado).
func (uc *ProductUseCase) List(filter repository.ProductFilter) ([]dto.ProductResponse, error) {
	filter.Limit = dto.ClampLimit(filter.Limit)
	list, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// GetByID lookup puntual sin restricción de actividad: un producto inactivo
// sigue siendo accesible por ID directo (preview de admin).
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	out := toProductResponse(product)
	return &out, nil
}

// ListByIDs lookup masivo, restringido a productos activos (asimétrico con
// GetByID a propósito). Entrada vacía devuelve lista vacía sin consultar.
func (uc *ProductUseCase) ListByIDs(ids []string) ([]dto.ProductResponse, error) {
	if len(ids) == 0 {
		return []dto.ProductResponse{}, nil
	}
	list, err := uc.repo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Create valida y persiste un producto nuevo; devuelve el ID generado.
func (uc *ProductUseCase) Create(in dto.UpsertProductRequest) (string, error) {
	product, err := buildProduct(uuid.New().String(), in)
	if err != nil {
		return "", err
	}
	product.CreatedAt = time.Now()
	if err := uc.repo.Create(product); err != nil {
		return "", err
	}
	return product.ID, nil
}

// Update reemplaza la fila completa del producto (mismo cuerpo que Create).
func (uc *ProductUseCase) Update(id string, in dto.UpsertProductRequest) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	product, err := buildProduct(id, in)
	if err != nil {
		return err
	}
	return uc.repo.Update(product)
}

// Delete borra el producto. Idempotente: un ID inexistente no es error.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func buildProduct(id string, in dto.UpsertProductRequest) (*entity.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	images, err := in.ImagesJSON()
	if err != nil {
		return nil, err
	}
	return &entity.Product{
		ID:            id,
		Name:          in.Name,
		Slug:          in.Slug,
		Category:      in.Category,
		Description:   in.Description,
		Price:         in.Price,
		OriginalPrice: in.OriginalPrice,
		Stock:         in.Stock,
		ImageURL:      in.ImageURL,
		Images:        images,
		IsFeatured:    in.IsFeatured,
		IsActive:      in.IsActive,
	}, nil
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Category:      p.Category,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Stock:         p.Stock,
		ImageURL:      p.ImageURL,
		Images:        p.Images,
		IsFeatured:    p.IsFeatured,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductResponse(p))
	}
	return items
}
