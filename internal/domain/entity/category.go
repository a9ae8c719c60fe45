package entity

// Category representa una colección del storefront (ej. "vestidos", "accesorios").
// Los productos la referencian por su etiqueta de texto, sin constraint en DB.
type Category struct {
	ID          string
	Name        string // único
	Slug        string // único
	Description string
	ImageURL    string
}
