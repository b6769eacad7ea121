package domain

// Параметры сортировки и их дефолты. Дефолты применяет движок поиска,
// а не кодек: расшифрованный из URL запрос остается минимальным.
const (
	SortByPrice     = "price"
	SortByCreatedAt = "created_at"
	SortByBedrooms  = "bedrooms"
	SortByAreaSqm   = "area_sqm"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"

	DefaultPage      = 1
	DefaultLimit     = 20
	MaxLimit         = 100
	DefaultSortBy    = SortByCreatedAt
	DefaultSortOrder = SortOrderDesc
)

var sortFields = map[string]bool{
	SortByPrice:     true,
	SortByCreatedAt: true,
	SortByBedrooms:  true,
	SortByAreaSqm:   true,
}

func IsSortBy(v string) bool {
	return sortFields[v]
}

func IsSortOrder(v string) bool {
	return v == SortOrderAsc || v == SortOrderDesc
}

// SearchQuery - структурированный поисковый запрос. Все поля опциональны:
// нулевое значение (пустая строка, nil, 0) означает "без ограничения".
type SearchQuery struct {
	// Текстовый поиск по title, city, neighborhood, description.
	Q string

	PropertyType string
	ListingType  string
	Status       string
	City         string
	Region       string

	MinPrice *float64
	MaxPrice *float64

	// Bedrooms - точное совпадение; Min/MaxBedrooms - включительный диапазон.
	Bedrooms    *int
	MinBedrooms *int
	MaxBedrooms *int

	Page  int
	Limit int

	SortBy    string
	SortOrder string
}

// Pagination - метаданные страницы результата.
// Инвариант: 1 <= Page <= TotalPages, TotalPages >= 1.
type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// ResultPage - страница результата поиска: срез записей плюс пагинация.
type ResultPage struct {
	Listings   []Listing
	Pagination Pagination
}
