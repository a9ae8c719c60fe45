package dto

// UpsertCategoryRequest entrada para crear o reemplazar una categoría.
type UpsertCategoryRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

// Validate chequea los límites del original (name/slug 1-100).
func (r *UpsertCategoryRequest) Validate() error {
	if n := len(r.Name); n < 1 || n > 100 {
		return errValidation("name debe tener entre 1 y 100 caracteres")
	}
	if n := len(r.Slug); n < 1 || n > 100 {
		return errValidation("slug debe tener entre 1 y 100 caracteres")
	}
	return nil
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}
