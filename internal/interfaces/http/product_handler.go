package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/application/usecase"
	"github.com/jhoicas/Boutique-api/internal/domain"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

// ProductHandler maneja las peticiones HTTP del catálogo. Las lecturas son
// públicas sin token; las mutaciones pasan por AuthMiddleware + RequireRole(admin).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// queryBool interpreta flags de query: solo "1" y "true" restringen; cualquier
// otro valor (incluida la ausencia) significa "sin restricción", nunca "false".
func queryBool(c *fiber.Ctx, key string) bool {
	v := c.Query(key)
	return v == "1" || v == "true"
}

// List godoc
// @Summary      Listar catálogo con filtros
// @Tags         products
// @Produce      json
// @Param        is_active    query  string  false  "1|true restringe a activos"
// @Param        is_featured  query  string  false  "1|true restringe a destacados"
// @Param        category     query  string  false  "etiqueta exacta"
// @Param        limit        query  int     false  "por defecto 50, máximo 100"
// @Success      200  {array}   dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	filter := repository.ProductFilter{
		Active:   queryBool(c, "is_active"),
		Featured: queryBool(c, "is_featured"),
		Category: c.Query("category"),
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "limit debe ser un entero"})
		}
		filter.Limit = n
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID (incluye inactivos)
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return internalError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// BulkByIDs godoc
// @Summary      Lookup masivo por IDs (solo activos)
// @Tags         products
// @Produce      json
// @Param        ids  query  string  true  "IDs separados por coma"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products/bulk/by-ids [get]
func (h *ProductHandler) BulkByIDs(c *fiber.Ctx) error {
	var ids []string
	for _, id := range strings.Split(c.Query("ids"), ",") {
		if id != "" {
			ids = append(ids, id)
		}
	}
	out, err := h.uc.ListByIDs(ids)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpsertProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.UpsertProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	id, err := h.uc.Create(in)
	if err != nil {
		return mutationError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.IDResponse{ID: id})
}

// Update godoc
// @Summary      Reemplazar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID del producto"
// @Param        body  body  dto.UpsertProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpsertProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(id, in); err != nil {
		return mutationError(c, err)
	}
	return c.JSON(dto.IDResponse{ID: id})
}

// Delete godoc
// @Summary      Eliminar producto (hard delete, idempotente)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.IDResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.IDResponse{ID: id})
}

// mutationError mapea los errores de dominio de las mutaciones del catálogo.
func mutationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "slug o nombre ya existe"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	default:
		return internalError(c, err)
	}
}
