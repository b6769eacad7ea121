package usecases_port

import (
	"context"

	"listing-service/internal/core/domain"
)

// SearchListingsUseCasePort - поиск по коллекции объявлений:
// фильтрация, сортировка, пагинация.
type SearchListingsUseCasePort interface {
	Execute(ctx context.Context, query domain.SearchQuery) (*domain.ResultPage, error)
}
