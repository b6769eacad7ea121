package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

// GetSimilarListingsUseCasePort - подборка похожих объявлений
// для страницы деталей.
type GetSimilarListingsUseCasePort interface {
	Execute(ctx context.Context, id string, limit int) ([]domain.Listing, error)
}
