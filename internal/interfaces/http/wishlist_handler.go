package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/application/usecase"
	"github.com/jhoicas/Boutique-api/internal/domain"
)

// WishlistHandler maneja los guardados del usuario autenticado. El dueño
// siempre sale del token, nunca del request.
type WishlistHandler struct {
	uc *usecase.WishlistUseCase
}

// NewWishlistHandler construye el handler.
func NewWishlistHandler(uc *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

// ListIDs godoc
// @Summary      IDs de producto guardados por el usuario
// @Tags         wishlist
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/wishlist [get]
func (h *WishlistHandler) ListIDs(c *fiber.Ctx) error {
	ids, err := h.uc.ListIDs(GetUserID(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(ids)
}

// ListProducts godoc
// @Summary      Productos guardados resueltos contra el catálogo (solo activos)
// @Tags         wishlist
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/wishlist/products [get]
func (h *WishlistHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.uc.ProductsForUser(GetUserID(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Guardar un producto (idempotente)
// @Tags         wishlist
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddWishlistRequest  true  "Producto a guardar"
// @Success      201   {object}  dto.WishlistItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/wishlist [post]
func (h *WishlistHandler) Add(c *fiber.Ctx) error {
	var in dto.AddWishlistRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Add(GetUserID(c), in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.WishlistItemResponse{ProductID: in.ProductID})
}

// Remove godoc
// @Summary      Quitar un producto guardado (idempotente)
// @Tags         wishlist
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.WishlistItemResponse
// @Router       /api/wishlist/{productId} [delete]
func (h *WishlistHandler) Remove(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if err := h.uc.Remove(GetUserID(c), productID); err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.WishlistItemResponse{ProductID: productID})
}
