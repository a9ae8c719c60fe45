package repository

import "github.com/jhoicas/Boutique-api/internal/domain/entity"

// ProductFilter predicados conjuntivos para el listado del catálogo.
// Los booleanos restringen solo cuando son true (un filtro ausente nunca se
// traduce a "igual a false"); Category compara por igualdad exacta de etiqueta.
type ProductFilter struct {
	Active   bool
	Featured bool
	Category string
	Limit    int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// Contrato de filtrado por actividad, intencionalmente asimétrico:
//   - GetByID NO restringe por is_active (un admin puede previsualizar un
//     producto desactivado por ID directo).
//   - ListByIDs SÍ restringe a activos, y con entrada vacía devuelve lista
//     vacía sin tocar la DB.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(filter ProductFilter) ([]*entity.Product, error)
	ListByIDs(ids []string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	// Delete es hard delete e idempotente: borrar un ID inexistente no es error.
	Delete(id string) error
}
