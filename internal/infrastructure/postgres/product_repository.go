package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, slug, category, description, price, original_price, stock, image_url, images, is_featured, is_active, created_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Slug duplicado -> ErrDuplicate.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, slug, category, description, price, original_price, stock, image_url, images, is_featured, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Slug, nullIfEmpty(product.Category),
		nullIfEmpty(product.Description), product.Price, product.OriginalPrice,
		product.Stock, nullIfEmpty(product.ImageURL), product.Images,
		product.IsFeatured, product.IsActive, product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID, sin restricción de actividad: los
// productos inactivos siguen siendo accesibles por lookup directo.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List compone los predicados del filtro en un único WHERE conjuntivo,
// siempre parameterizado. Un booleano en false no agrega predicado (ausente
// nunca significa "igual a false"). Orden: created_at descendente; el empate
// queda sin garantía.
func (r *ProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	var where []string
	var args []any
	if filter.Active {
		where = append(where, "is_active = TRUE")
	}
	if filter.Featured {
		where = append(where, "is_featured = TRUE")
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	query := `SELECT ` + productColumns + ` FROM products`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListByIDs lookup masivo restringido a productos ACTIVOS (asimétrico con
// GetByID, a propósito). Entrada vacía devuelve vacío sin emitir query.
func (r *ProductRepo) ListByIDs(ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ANY($1) AND is_active = TRUE`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("list products by ids: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Update reemplaza la fila completa (mismo shape que Create, sin created_at).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, slug = $3, category = $4, description = $5, price = $6,
		    original_price = $7, stock = $8, image_url = $9, images = $10,
		    is_featured = $11, is_active = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Slug, nullIfEmpty(product.Category),
		nullIfEmpty(product.Description), product.Price, product.OriginalPrice,
		product.Stock, nullIfEmpty(product.ImageURL), product.Images,
		product.IsFeatured, product.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete hard delete, idempotente: borrar un ID inexistente no es error.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// scanProduct mapea una fila a la entidad, normalizando NULLs a sus ceros.
func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var category, description, imageURL *string
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &category, &description, &p.Price,
		&p.OriginalPrice, &p.Stock, &imageURL, &p.Images,
		&p.IsFeatured, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if category != nil {
		p.Category = *category
	}
	if description != nil {
		p.Description = *description
	}
	if imageURL != nil {
		p.ImageURL = *imageURL
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
