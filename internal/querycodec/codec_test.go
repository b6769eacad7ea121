package querycodec

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-service/internal/core/domain"
)

func TestDecode_EmptyQueryGivesZeroValue(t *testing.T) {
	q := Decode(url.Values{})
	assert.Equal(t, domain.SearchQuery{}, q)
}

func TestDecode_ValidFields(t *testing.T) {
	params := url.Values{}
	params.Set("q", "beach")
	params.Set("property_type", "apartment")
	params.Set("listing_type", "sale")
	params.Set("city", "Douala")
	params.Set("min_price", "40000")
	params.Set("max_price", "70000.5")
	params.Set("bedrooms", "2")
	params.Set("page", "3")
	params.Set("limit", "10")
	params.Set("sort_by", "price")
	params.Set("sort_order", "asc")

	q := Decode(params)

	assert.Equal(t, "beach", q.Q)
	assert.Equal(t, "apartment", q.PropertyType)
	assert.Equal(t, "sale", q.ListingType)
	assert.Equal(t, "Douala", q.City)
	require.NotNil(t, q.MinPrice)
	assert.Equal(t, 40000.0, *q.MinPrice)
	require.NotNil(t, q.MaxPrice)
	assert.Equal(t, 70000.5, *q.MaxPrice)
	require.NotNil(t, q.Bedrooms)
	assert.Equal(t, 2, *q.Bedrooms)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, "price", q.SortBy)
	assert.Equal(t, "asc", q.SortOrder)
}

func TestDecode_GarbageValuesAreDropped(t *testing.T) {
	params := url.Values{}
	params.Set("property_type", "castle")
	params.Set("listing_type", "barter")
	params.Set("status", "gone")
	params.Set("min_price", "cheap")
	params.Set("bedrooms", "many")
	params.Set("sort_by", "color")
	params.Set("sort_order", "sideways")
	params.Set("unknown_key", "whatever")

	q := Decode(params)
	assert.Equal(t, domain.SearchQuery{}, q)
}

func TestDecode_PageAndLimitAreClamped(t *testing.T) {
	params := url.Values{}
	params.Set("page", "0")
	params.Set("limit", "10000")
	q := Decode(params)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, domain.MaxLimit, q.Limit)

	params.Set("page", "-5")
	params.Set("limit", "0")
	q = Decode(params)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 1, q.Limit)
}

func TestEncode_ZeroValueIsEmpty(t *testing.T) {
	params := Encode(domain.SearchQuery{})
	assert.Empty(t, params)
}

func TestEncode_DefaultsAreOmitted(t *testing.T) {
	params := Encode(domain.SearchQuery{
		Page:      domain.DefaultPage,
		Limit:     domain.DefaultLimit,
		SortBy:    domain.DefaultSortBy,
		SortOrder: domain.DefaultSortOrder,
	})
	assert.Empty(t, params)
}

func TestEncode_TrimsStringsAndFormatsNumbers(t *testing.T) {
	params := Encode(domain.SearchQuery{
		Q:        "  beach  ",
		City:     "   ",
		MinPrice: floatPtr(40000),
		MaxPrice: floatPtr(70000.5),
		Bedrooms: intPtr(2),
		Page:     3,
		Limit:    10,
	})

	assert.Equal(t, "beach", params.Get("q"))
	assert.False(t, params.Has("city"))
	assert.Equal(t, "40000", params.Get("min_price"))
	assert.Equal(t, "70000.5", params.Get("max_price"))
	assert.Equal(t, "2", params.Get("bedrooms"))
	assert.Equal(t, "3", params.Get("page"))
	assert.Equal(t, "10", params.Get("limit"))
}

// Раунд-трип: decode(encode(q)) дает запрос, неотличимый от исходного
// после применения дефолтов движком.
func TestRoundTrip_ObservationallyEquivalent(t *testing.T) {
	original := domain.SearchQuery{
		Q:         "duplex",
		City:      "Douala",
		MinPrice:  floatPtr(40000),
		MaxPrice:  floatPtr(70000),
		Bedrooms:  intPtr(3),
		Page:      2,
		Limit:     10,
		SortBy:    domain.SortByPrice,
		SortOrder: domain.SortOrderAsc,
	}

	decoded := Decode(Encode(original))
	assert.Equal(t, original, decoded)
}

func TestRoundTrip_DefaultsCollapseToAbsent(t *testing.T) {
	original := domain.SearchQuery{
		City:      "Douala",
		Page:      1,
		Limit:     domain.DefaultLimit,
		SortBy:    domain.DefaultSortBy,
		SortOrder: domain.DefaultSortOrder,
	}

	decoded := Decode(Encode(original))
	// Явные дефолты схлопываются в отсутствующие поля: для движка
	// оба запроса эквивалентны
	assert.Equal(t, domain.SearchQuery{City: "Douala"}, decoded)
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
