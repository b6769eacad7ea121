package usecase

import (
	"context"
	"sort"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/mmcloughlin/geohash"
)

const (
	DefaultSimilarLimit = 4
	MaxSimilarLimit     = 12

	// Длина общего префикса геохэша, начиная с которой объекты
	// считаются соседями (5 знаков - примерно 5x5 км).
	similarGeohashPrecision = 5
)

// GetSimilarListingsUseCase - подборка похожих объявлений для страницы
// деталей: тот же город или тот же тип недвижимости, само объявление
// исключается. При наличии координат у обеих записей подборка
// ранжируется по длине общего префикса геохэша.
type GetSimilarListingsUseCase struct {
	store port.ListingStorePort
}

func NewGetSimilarListingsUseCase(store port.ListingStorePort) *GetSimilarListingsUseCase {
	return &GetSimilarListingsUseCase{store: store}
}

func (uc *GetSimilarListingsUseCase) Execute(ctx context.Context, id string, limit int) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetSimilarListings",
		"listing_id": id,
	})

	if limit < 1 {
		limit = DefaultSimilarLimit
	}
	if limit > MaxSimilarLimit {
		limit = MaxSimilarLimit
	}

	base, err := uc.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot, err := uc.store.FindAll(ctx)
	if err != nil {
		ucLogger.Error("Store returned an error", err, nil)
		return nil, err
	}

	baseHash := listingGeohash(base.Listing)

	type candidate struct {
		listing domain.Listing
		// Чем длиннее общий префикс геохэша, тем ближе объект.
		proximity int
	}

	candidates := make([]candidate, 0)
	for _, l := range snapshot {
		if l.ID == base.ID {
			continue
		}
		if l.City != base.City && l.PropertyType != base.PropertyType {
			continue
		}
		candidates = append(candidates, candidate{
			listing:   l,
			proximity: commonPrefixLen(baseHash, listingGeohash(l)),
		})
	}

	// Стабильная сортировка: при равной близости сохраняется порядок хранилища.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].proximity > candidates[j].proximity
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]domain.Listing, len(candidates))
	for i, c := range candidates {
		result[i] = c.listing
	}

	ucLogger.Debug("Similar listings selected", port.Fields{"count": len(result)})
	return result, nil
}

func listingGeohash(l domain.Listing) string {
	if l.Latitude == nil || l.Longitude == nil {
		return ""
	}
	return geohash.EncodeWithPrecision(*l.Latitude, *l.Longitude, similarGeohashPrecision)
}

func commonPrefixLen(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
