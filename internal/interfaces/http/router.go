package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Boutique-api/internal/application/auth"
	"github.com/jhoicas/Boutique-api/internal/application/usecase"
	"github.com/jhoicas/Boutique-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	WishlistUC *usecase.WishlistUseCase
	AdminUC    *usecase.AdminUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Tres niveles: público, Bearer y
// Bearer + rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (registro/login públicos, perfil protegido)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Catálogo (lecturas públicas, sin token)
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/bulk/by-ids", productHandler.BulkByIDs)
	products.Get("/:id", productHandler.GetByID)

	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := api.Group("/categories")
	categories.Get("/", categoryHandler.List)

	// Wishlist (requiere Bearer; el dueño sale del token)
	wishlistHandler := NewWishlistHandler(deps.WishlistUC)
	wishlist := api.Group("/wishlist", AuthMiddleware(deps.JWTSecret))
	wishlist.Get("/", wishlistHandler.ListIDs)
	wishlist.Get("/products", wishlistHandler.ListProducts)
	wishlist.Post("/", wishlistHandler.Add)
	wishlist.Delete("/:productId", wishlistHandler.Remove)

	// Mutaciones del catálogo (Bearer + admin)
	requireAdmin := RequireRole(entity.RoleAdmin)
	bearer := AuthMiddleware(deps.JWTSecret)
	products.Post("/", bearer, requireAdmin, productHandler.Create)
	products.Put("/:id", bearer, requireAdmin, productHandler.Update)
	products.Delete("/:id", bearer, requireAdmin, productHandler.Delete)
	categories.Post("/", bearer, requireAdmin, categoryHandler.Create)
	categories.Put("/:id", bearer, requireAdmin, categoryHandler.Update)
	categories.Delete("/:id", bearer, requireAdmin, categoryHandler.Delete)

	// Back-office (Bearer + admin)
	adminHandler := NewAdminHandler(deps.AdminUC)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))
	admin.Get("/users", adminHandler.ListUsers)
	admin.Post("/users/:id/role", adminHandler.SetRole)
	admin.Get("/analytics", adminHandler.Analytics)
}
