package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/application/usecase"
	"github.com/jhoicas/Boutique-api/internal/domain"
)

// AdminHandler maneja el back-office: usuarios, roles y analítica.
// Todas las rutas cuelgan de AuthMiddleware + RequireRole(admin).
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListUsers godoc
// @Summary      Listar usuarios con rol efectivo y último login
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.AdminUserResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// SetRole godoc
// @Summary      Cambiar el rol efectivo de un usuario
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del usuario"
// @Param        body  body  dto.SetRoleRequest  true  "Rol destino: user|admin"
// @Success      200   {object}  dto.SetRoleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/role [post]
func (h *AdminHandler) SetRole(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.SetRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.SetRole(id, in); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ROLE", Message: "rol debe ser user o admin"})
		case errors.Is(err, domain.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		default:
			return internalError(c, err)
		}
	}
	return c.JSON(dto.SetRoleResponse{ID: id, Role: in.Role})
}

// Analytics godoc
// @Summary      Contadores del panel y actividad reciente
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AnalyticsResponse
// @Router       /api/admin/analytics [get]
func (h *AdminHandler) Analytics(c *fiber.Ctx) error {
	out, err := h.uc.Analytics()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}
