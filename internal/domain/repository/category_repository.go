package repository

import "github.com/jhoicas/Boutique-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}
