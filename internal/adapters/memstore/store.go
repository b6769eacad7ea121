// Package memstore - in-memory реализация ListingStorePort поверх
// неизменяемого датасета. Датасет загружается один раз (встроенный
// сид-файл или произвольный срез записей) и дальше только читается,
// поэтому хранилище безопасно для конкурентных вызовов без блокировок.
package memstore

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"listing-service/internal/core/domain"
)

//go:embed seed/listings.json
var seedFS embed.FS

const seedSchemaKey = "ListingSeed"

// MemoryStore реализует port.ListingStorePort.
type MemoryStore struct {
	listings []domain.Listing
	byID     map[string]domain.ListingWithImages
}

// NewStore строит хранилище из готовых записей. Порядок среза становится
// порядком хранилища (он же tie-break стабильной сортировки движка).
// Дубликат id - ошибка: id уникально идентифицирует запись.
func NewStore(records []domain.ListingWithImages) (*MemoryStore, error) {
	store := &MemoryStore{
		listings: make([]domain.Listing, 0, len(records)),
		byID:     make(map[string]domain.ListingWithImages, len(records)),
	}
	for _, rec := range records {
		if rec.ID == "" {
			return nil, fmt.Errorf("%w: record without id", domain.ErrInvalidSeed)
		}
		if _, exists := store.byID[rec.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate id %q", domain.ErrInvalidSeed, rec.ID)
		}
		store.byID[rec.ID] = rec
		store.listings = append(store.listings, rec.Listing)
	}
	return store, nil
}

// NewSeedStore загружает встроенный демонстрационный датасет,
// предварительно проверив его по JSON-схеме.
func NewSeedStore() (*MemoryStore, error) {
	raw, err := seedFS.ReadFile("seed/listings.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded seed: %w", err)
	}

	// Схема ловит кривой датасет на старте, а не в середине запроса.
	schema, err := SchemaForKey(seedSchemaKey)
	if err != nil {
		return nil, err
	}
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSeed, err)
	}
	if err := schema.Validate(generic); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSeed, err)
	}

	var seed []seedListing
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSeed, err)
	}

	records := make([]domain.ListingWithImages, len(seed))
	for i, s := range seed {
		records[i] = s.toDomain()
	}
	return NewStore(records)
}

// FindAll возвращает снимок коллекции. Срез копируется, чтобы вызывающая
// сторона могла его сортировать, не трогая порядок хранилища.
func (s *MemoryStore) FindAll(ctx context.Context) ([]domain.Listing, error) {
	snapshot := make([]domain.Listing, len(s.listings))
	copy(snapshot, s.listings)
	return snapshot, nil
}

// FindByID возвращает объявление с фотографиями или ErrListingNotFound.
func (s *MemoryStore) FindByID(ctx context.Context, id string) (*domain.ListingWithImages, error) {
	rec, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrListingNotFound
	}
	return &rec, nil
}

// Len возвращает размер датасета.
func (s *MemoryStore) Len() int {
	return len(s.listings)
}
