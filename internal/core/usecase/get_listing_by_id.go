package usecase

import (
	"context"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type GetListingByIDUseCase struct {
	store port.ListingStorePort
}

func NewGetListingByIDUseCase(store port.ListingStorePort) *GetListingByIDUseCase {
	return &GetListingByIDUseCase{store: store}
}

func (uc *GetListingByIDUseCase) Execute(ctx context.Context, id string) (*domain.ListingWithImages, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetListingByID",
		"listing_id": id,
	})

	listing, err := uc.store.FindByID(ctx, id)
	if err != nil {
		// ErrListingNotFound - ожидаемый исход, не ошибка хранилища.
		ucLogger.Debug("Listing lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Debug("Listing found", port.Fields{"images_count": len(listing.Images)})
	return listing, nil
}
