package dto

// AddWishlistRequest entrada para guardar un producto en la wishlist.
type AddWishlistRequest struct {
	ProductID string `json:"product_id"`
}

// Validate chequea el request.
func (r *AddWishlistRequest) Validate() error {
	if r.ProductID == "" {
		return errValidation("product_id es requerido")
	}
	return nil
}

// WishlistItemResponse eco del par afectado en add/remove.
type WishlistItemResponse struct {
	ProductID string `json:"product_id"`
}
