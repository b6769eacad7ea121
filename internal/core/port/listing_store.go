package port

import (
	"context"

	"listing-service/internal/core/domain"
)

// ListingStorePort - читающий порт к коллекции объявлений.
// Хранилище для движка поиска строго read-only: реализация обязана
// отдавать снимок в стабильном порядке и никогда не мутировать записи.
// За этим портом может стоять как in-memory датасет, так и база данных.
type ListingStorePort interface {
	// FindAll возвращает все объявления в порядке хранилища.
	FindAll(ctx context.Context) ([]domain.Listing, error)

	// FindByID возвращает объявление с его фотографиями
	// или domain.ErrListingNotFound.
	FindByID(ctx context.Context, id string) (*domain.ListingWithImages, error)
}
