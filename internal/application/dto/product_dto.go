package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// UpsertProductRequest entrada para crear o reemplazar un producto.
// PUT usa el mismo cuerpo que POST: el original trata update como reemplazo
// completo de la fila, no como patch parcial.
type UpsertProductRequest struct {
	Name          string              `json:"name"`
	Slug          string              `json:"slug"`
	Category      string              `json:"category"`
	Description   string              `json:"description"`
	Price         decimal.Decimal     `json:"price"`
	OriginalPrice decimal.NullDecimal `json:"original_price"`
	Stock         int                 `json:"stock"`
	ImageURL      string              `json:"image_url"`
	Images        []string            `json:"images"`
	IsFeatured    bool                `json:"is_featured"`
	IsActive      bool                `json:"is_active"`
}

// Validate chequea límites de tipo y rango antes de persistir.
func (r *UpsertProductRequest) Validate() error {
	if n := len(r.Name); n < 1 || n > 100 {
		return errValidation("name debe tener entre 1 y 100 caracteres")
	}
	if n := len(r.Slug); n < 1 || n > 100 {
		return errValidation("slug debe tener entre 1 y 100 caracteres")
	}
	if len(r.Category) > 50 {
		return errValidation("category no puede exceder 50 caracteres")
	}
	if r.Price.IsNegative() {
		return errValidation("price debe ser >= 0")
	}
	if r.OriginalPrice.Valid && r.OriginalPrice.Decimal.IsNegative() {
		return errValidation("original_price debe ser >= 0")
	}
	if r.Stock < 0 {
		return errValidation("stock debe ser >= 0")
	}
	return nil
}

// ImagesJSON serializa la lista ordenada de imágenes como blob JSON, o nil si no hay.
func (r *UpsertProductRequest) ImagesJSON() (json.RawMessage, error) {
	if r.Images == nil {
		return nil, nil
	}
	b, err := json.Marshal(r.Images)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Slug          string              `json:"slug"`
	Category      string              `json:"category,omitempty"`
	Description   string              `json:"description,omitempty"`
	Price         decimal.Decimal     `json:"price"`
	OriginalPrice decimal.NullDecimal `json:"original_price"`
	Stock         int                 `json:"stock"`
	ImageURL      string              `json:"image_url,omitempty"`
	Images        json.RawMessage     `json:"images,omitempty"`
	IsFeatured    bool                `json:"is_featured"`
	IsActive      bool                `json:"is_active"`
	CreatedAt     time.Time           `json:"created_at"`
}

// IDResponse respuesta mínima de mutaciones (create/update/delete).
type IDResponse struct {
	ID string `json:"id"`
}
