package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

var _ repository.WishlistRepository = (*WishlistRepo)(nil)

// WishlistRepo implementación del puerto WishlistRepository sobre PostgreSQL.
// La tabla es la relación pura (user_id, product_id) con PK compuesta.
type WishlistRepo struct {
	q Querier
}

// NewWishlistRepository construye el adaptador de persistencia para la wishlist.
func NewWishlistRepository(q Querier) *WishlistRepo {
	return &WishlistRepo{q: q}
}

// ListIDs devuelve los IDs de producto guardados por el usuario.
func (r *WishlistRepo) ListIDs(userID string) ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT product_id FROM wishlist WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan wishlist: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Add inserta el par con ON CONFLICT DO NOTHING: repetir el add es un no-op
// exitoso y el caller no distingue cuál caso ocurrió.
func (r *WishlistRepo) Add(userID, productID string) error {
	_, err := r.q.Exec(context.Background(), `
		INSERT INTO wishlist (user_id, product_id) VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING`,
		userID, productID,
	)
	if err != nil {
		return fmt.Errorf("add wishlist: %w", err)
	}
	return nil
}

// Remove borra el par si existe. Idempotente.
func (r *WishlistRepo) Remove(userID, productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM wishlist WHERE user_id = $1 AND product_id = $2`,
		userID, productID,
	)
	if err != nil {
		return fmt.Errorf("remove wishlist: %w", err)
	}
	return nil
}
