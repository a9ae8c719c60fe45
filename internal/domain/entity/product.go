package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa una entrada del catálogo de la tienda.
// OriginalPrice permite mostrar precio tachado en rebajas (NULL si no aplica);
// Images es la lista ordenada de URLs adicionales, persistida como blob JSON
// junto a la fila. Category es una etiqueta de texto libre, no una FK a
// categories: el esquema original la dejó desacoplada y se conserva así.
type Product struct {
	ID            string
	Name          string
	Slug          string // clave única apta para URL
	Category      string
	Description   string
	Price         decimal.Decimal
	OriginalPrice decimal.NullDecimal
	Stock         int
	ImageURL      string
	Images        json.RawMessage // arreglo JSON ordenado de URLs, nil si no hay
	IsFeatured    bool
	IsActive      bool
	CreatedAt     time.Time
}

// OnSale indica si el producto debe mostrar badge de rebaja.
func (p *Product) OnSale() bool {
	return p.OriginalPrice.Valid && p.OriginalPrice.Decimal.GreaterThan(p.Price)
}
