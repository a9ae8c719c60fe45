package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría. Nombre o slug duplicado -> ErrDuplicate.
func (r *CategoryRepo) Create(category *entity.Category) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO categories (id, name, slug, description, image_url)
		VALUES ($1, $2, $3, $4, $5)`,
		category.ID, category.Name, category.Slug,
		nullIfEmpty(category.Description), nullIfEmpty(category.ImageURL),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// List devuelve todas las categorías ordenadas por nombre ascendente.
func (r *CategoryRepo) List() ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, name, slug, description, image_url
		FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		var description, imageURL *string
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &description, &imageURL); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		if description != nil {
			c.Description = *description
		}
		if imageURL != nil {
			c.ImageURL = *imageURL
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update reemplaza la categoría completa; ErrNotFound si el ID no existe.
func (r *CategoryRepo) Update(category *entity.Category) error {
	tag, err := r.q.Exec(context.Background(), `
		UPDATE categories SET name = $2, slug = $3, description = $4, image_url = $5
		WHERE id = $1`,
		category.ID, category.Name, category.Slug,
		nullIfEmpty(category.Description), nullIfEmpty(category.ImageURL),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete borra la categoría. Idempotente; no toca productos (referencia débil).
func (r *CategoryRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
