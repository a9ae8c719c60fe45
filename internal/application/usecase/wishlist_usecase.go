package usecase

import (
	"github.com/jhoicas/Boutique-api/internal/application/dto"
	"github.com/jhoicas/Boutique-api/internal/domain/repository"
)

// WishlistUseCase mantiene la relación usuario-producto y resuelve los
// productos guardados a través del catálogo.
type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// NewWishlistUseCase construye el caso de uso.
func NewWishlistUseCase(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) *WishlistUseCase {
	return &WishlistUseCase{wishlistRepo: wishlistRepo, productRepo: productRepo}
}

// ListIDs devuelve los IDs de producto guardados por el usuario.
func (uc *WishlistUseCase) ListIDs(userID string) ([]string, error) {
	ids, err := uc.wishlistRepo.ListIDs(userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// ProductsForUser resuelve los guardados vía ListByIDs del catálogo, por lo
// que hereda la restricción de activos: un producto que pasa a inactivo
// desaparece de la vista aunque la fila de la relación siga existiendo.
func (uc *WishlistUseCase) ProductsForUser(userID string) ([]dto.ProductResponse, error) {
	ids, err := uc.wishlistRepo.ListIDs(userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []dto.ProductResponse{}, nil
	}
	list, err := uc.productRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Add guarda el par (usuario, producto). Insert-or-ignore: repetir el add es un no-op exitoso.
func (uc *WishlistUseCase) Add(userID string, in dto.AddWishlistRequest) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return uc.wishlistRepo.Add(userID, in.ProductID)
}

// Remove elimina el par si existe. Idempotente.
func (uc *WishlistUseCase) Remove(userID, productID string) error {
	return uc.wishlistRepo.Remove(userID, productID)
}
