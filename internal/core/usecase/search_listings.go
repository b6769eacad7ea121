package usecase

import (
	"context"
	"sort"
	"strings"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// SearchListingsUseCase - движок поиска: фильтрация, сортировка и
// пагинация снимка хранилища. Чистая функция от (query, snapshot),
// побочных эффектов нет, пустой результат - не ошибка.
type SearchListingsUseCase struct {
	store port.ListingStorePort
}

func NewSearchListingsUseCase(store port.ListingStorePort) *SearchListingsUseCase {
	return &SearchListingsUseCase{store: store}
}

func (uc *SearchListingsUseCase) Execute(ctx context.Context, query domain.SearchQuery) (*domain.ResultPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchListings",
	})

	snapshot, err := uc.store.FindAll(ctx)
	if err != nil {
		ucLogger.Error("Store returned an error", err, nil)
		return nil, err
	}

	// Дефолты применяются здесь, а не в кодеке: явно заданный дефолт
	// неотличим от отсутствующего поля.
	page := query.Page
	if page < 1 {
		page = domain.DefaultPage
	}
	limit := query.Limit
	if limit < 1 {
		limit = domain.DefaultLimit
	}
	if limit > domain.MaxLimit {
		limit = domain.MaxLimit
	}
	sortBy := query.SortBy
	if !domain.IsSortBy(sortBy) {
		sortBy = domain.DefaultSortBy
	}
	sortOrder := query.SortOrder
	if !domain.IsSortOrder(sortOrder) {
		sortOrder = domain.DefaultSortOrder
	}

	// Фильтры конъюнктивны и независимы, порядок применения не важен.
	filtered := make([]domain.Listing, 0, len(snapshot))
	for _, listing := range snapshot {
		if matchesQuery(listing, query) {
			filtered = append(filtered, listing)
		}
	}

	// Стабильная сортировка: при равных ключах сохраняется порядок
	// хранилища, вторичного ключа нет.
	sortListings(filtered, sortBy, sortOrder)

	total := len(filtered)
	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}
	// Пагинация зажимается в допустимые границы, а не ошибается.
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	result := &domain.ResultPage{
		Listings: filtered[start:end],
		Pagination: domain.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}

	ucLogger.Debug("Search finished", port.Fields{
		"total_found":   total,
		"items_on_page": len(result.Listings),
		"page":          page,
	})

	return result, nil
}

func matchesQuery(l domain.Listing, q domain.SearchQuery) bool {
	// Текстовый поиск: подстрока хотя бы в одном из полей
	// title, city, neighborhood, description. Пустой q - без ограничения.
	if term := strings.TrimSpace(q.Q); term != "" {
		term = strings.ToLower(term)
		if !containsTerm(l, term) {
			return false
		}
	}

	if q.PropertyType != "" && l.PropertyType != q.PropertyType {
		return false
	}
	if q.ListingType != "" && l.ListingType != q.ListingType {
		return false
	}
	if q.Status != "" && l.Status != q.Status {
		return false
	}

	// Город: равенство ИЛИ вхождение подстроки (без учета регистра) -
	// частичные названия городов в старых URL должны продолжать работать.
	if city := strings.TrimSpace(q.City); city != "" {
		c := strings.ToLower(city)
		lc := strings.ToLower(l.City)
		if lc != c && !strings.Contains(lc, c) {
			return false
		}
	}

	// Регион: только вхождение подстроки.
	if region := strings.TrimSpace(q.Region); region != "" {
		r := strings.ToLower(region)
		lr := ""
		if l.Region != nil {
			lr = strings.ToLower(*l.Region)
		}
		if !strings.Contains(lr, r) {
			return false
		}
	}

	if q.MinPrice != nil && l.Price < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && l.Price > *q.MaxPrice {
		return false
	}

	// Точный фильтр по спальням: запись с bedrooms == null
	// не совпадает ни с каким точным значением.
	if q.Bedrooms != nil {
		if l.Bedrooms == nil || *l.Bedrooms != *q.Bedrooms {
			return false
		}
	}

	// Диапазон по спальням: null считается нулем.
	if q.MinBedrooms != nil && bedroomsOrZero(l) < *q.MinBedrooms {
		return false
	}
	if q.MaxBedrooms != nil && bedroomsOrZero(l) > *q.MaxBedrooms {
		return false
	}

	return true
}

func containsTerm(l domain.Listing, term string) bool {
	if strings.Contains(strings.ToLower(l.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(l.City), term) {
		return true
	}
	if l.Neighborhood != nil && strings.Contains(strings.ToLower(*l.Neighborhood), term) {
		return true
	}
	if l.Description != nil && strings.Contains(strings.ToLower(*l.Description), term) {
		return true
	}
	return false
}

func bedroomsOrZero(l domain.Listing) int {
	if l.Bedrooms == nil {
		return 0
	}
	return *l.Bedrooms
}

func areaOrZero(l domain.Listing) float64 {
	if l.AreaSqm == nil {
		return 0
	}
	return *l.AreaSqm
}

func sortListings(list []domain.Listing, sortBy, sortOrder string) {
	asc := sortOrder == domain.SortOrderAsc

	less := func(a, b domain.Listing) bool { return false }
	switch sortBy {
	case domain.SortByPrice:
		less = func(a, b domain.Listing) bool { return a.Price < b.Price }
	case domain.SortByBedrooms:
		less = func(a, b domain.Listing) bool { return bedroomsOrZero(a) < bedroomsOrZero(b) }
	case domain.SortByAreaSqm:
		less = func(a, b domain.Listing) bool { return areaOrZero(a) < areaOrZero(b) }
	default:
		// created_at: ISO-8601 корректно сравнивается как строка.
		less = func(a, b domain.Listing) bool { return a.CreatedAt < b.CreatedAt }
	}

	sort.SliceStable(list, func(i, j int) bool {
		if asc {
			return less(list[i], list[j])
		}
		return less(list[j], list[i])
	})
}
