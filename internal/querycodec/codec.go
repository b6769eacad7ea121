// Package querycodec - двусторонний маппинг между query-строкой URL и
// domain.SearchQuery. Decode нарочно снисходителен: неизвестные ключи и
// невалидные значения молча отбрасываются (поле остается пустым), чтобы
// старые и кривые URL деградировали мягко, а не падали. Encode -
// минимален: поля, равные молчаливым дефолтам, не эмитятся.
package querycodec

import (
	"net/url"
	"strconv"
	"strings"

	"listing-service/internal/core/domain"
)

// Decode разбирает query-параметры в структурированный запрос.
// В результат попадают только явно присутствующие и валидные поля;
// дефолты применяет движок поиска, а не кодек.
func Decode(params url.Values) domain.SearchQuery {
	q := domain.SearchQuery{}

	if v := params.Get("q"); v != "" {
		q.Q = v
	}

	// Перечисления проверяются по allow-list: невалидный токен = отсутствие.
	if v := params.Get("property_type"); domain.IsPropertyType(v) {
		q.PropertyType = v
	}
	if v := params.Get("listing_type"); domain.IsListingType(v) {
		q.ListingType = v
	}
	if v := params.Get("status"); domain.IsListingStatus(v) {
		q.Status = v
	}

	if v := params.Get("city"); v != "" {
		q.City = v
	}
	if v := params.Get("region"); v != "" {
		q.Region = v
	}

	q.MinPrice = parseFloat(params, "min_price")
	q.MaxPrice = parseFloat(params, "max_price")
	q.Bedrooms = parseInt(params, "bedrooms")
	q.MinBedrooms = parseInt(params, "min_bedrooms")
	q.MaxBedrooms = parseInt(params, "max_bedrooms")

	if v := parseInt(params, "page"); v != nil {
		page := *v
		if page < 1 {
			page = 1
		}
		q.Page = page
	}
	if v := parseInt(params, "limit"); v != nil {
		limit := *v
		if limit < 1 {
			limit = 1
		}
		if limit > domain.MaxLimit {
			limit = domain.MaxLimit
		}
		q.Limit = limit
	}

	if v := params.Get("sort_by"); domain.IsSortBy(v) {
		q.SortBy = v
	}
	if v := params.Get("sort_order"); domain.IsSortOrder(v) {
		q.SortOrder = v
	}

	return q
}

// Encode собирает минимальное представление запроса для URL.
// Строки триммятся (пустая после трима - не эмитится), числа пишутся
// в каноническом десятичном виде, молчаливые дефолты опускаются.
func Encode(q domain.SearchQuery) url.Values {
	params := url.Values{}

	setTrimmed(params, "q", q.Q)
	setTrimmed(params, "property_type", q.PropertyType)
	setTrimmed(params, "listing_type", q.ListingType)
	setTrimmed(params, "status", q.Status)
	setTrimmed(params, "city", q.City)
	setTrimmed(params, "region", q.Region)

	setFloat(params, "min_price", q.MinPrice)
	setFloat(params, "max_price", q.MaxPrice)
	setInt(params, "bedrooms", q.Bedrooms)
	setInt(params, "min_bedrooms", q.MinBedrooms)
	setInt(params, "max_bedrooms", q.MaxBedrooms)

	if q.Page > domain.DefaultPage {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 && q.Limit != domain.DefaultLimit {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	if q.SortBy != "" && q.SortBy != domain.DefaultSortBy {
		params.Set("sort_by", q.SortBy)
	}
	if q.SortOrder != "" && q.SortOrder != domain.DefaultSortOrder {
		params.Set("sort_order", q.SortOrder)
	}

	return params
}

// parseFloat - пустая строка или мусор дают nil, а не ноль.
func parseFloat(params url.Values, key string) *float64 {
	v := params.Get(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseInt(params url.Values, key string) *int {
	v := params.Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func setTrimmed(params url.Values, key, value string) {
	if v := strings.TrimSpace(value); v != "" {
		params.Set(key, v)
	}
}

func setFloat(params url.Values, key string, value *float64) {
	if value != nil {
		params.Set(key, strconv.FormatFloat(*value, 'f', -1, 64))
	}
}

func setInt(params url.Values, key string, value *int) {
	if value != nil {
		params.Set(key, strconv.Itoa(*value))
	}
}
