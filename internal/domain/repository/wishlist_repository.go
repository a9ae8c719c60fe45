package repository

// WishlistRepository define el puerto para la relación usuario-producto.
// Add es insert-or-ignore: agregar un par ya existente termina bien sin
// señalar cuál caso ocurrió. Remove es idempotente.
type WishlistRepository interface {
	ListIDs(userID string) ([]string, error)
	Add(userID, productID string) error
	Remove(userID, productID string) error
}
