package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

// GetListingByIDUseCasePort - получение одного объявления с фотографиями.
type GetListingByIDUseCasePort interface {
	Execute(ctx context.Context, id string) (*domain.ListingWithImages, error)
}
