package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-service/internal/adapters/memstore"
	"listing-service/internal/core/usecase"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()

	store, err := memstore.NewSeedStore()
	require.NoError(t, err)

	handlers := NewListingsHandler(
		usecase.NewSearchListingsUseCase(store),
		usecase.NewGetListingByIDUseCase(store),
		usecase.NewGetSimilarListingsUseCase(store),
	)

	r := chi.NewRouter()
	r.Route("/properties", func(r chi.Router) {
		r.Get("/", handlers.SearchListings)
		r.Get("/{listingID}", handlers.GetListing)
		r.Get("/{listingID}/similar", handlers.GetSimilarListings)
	})
	r.Get("/health", handlers.Health)
	return r
}

func doRequest(t *testing.T, router chi.Router, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestSearchListings_EnvelopeAndFiltering(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, "/properties?city=Douala&min_price=40000&max_price=70000&sort_by=price&sort_order=asc")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success    bool              `json:"success"`
		Data       []ListingResponse `json:"data"`
		Pagination struct {
			Page       int `json:"page"`
			Limit      int `json:"limit"`
			Total      int `json:"total"`
			TotalPages int `json:"totalPages"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, 1, body.Pagination.Page)
	assert.Equal(t, 20, body.Pagination.Limit)
	require.NotEmpty(t, body.Data)
	var prev float64
	for _, l := range body.Data {
		assert.Equal(t, "Douala", l.City)
		assert.GreaterOrEqual(t, l.Price, 40000.0)
		assert.LessOrEqual(t, l.Price, 70000.0)
		assert.GreaterOrEqual(t, l.Price, prev)
		prev = l.Price
	}
}

func TestSearchListings_GarbageQueryDegradesToFullList(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, "/properties?property_type=castle&min_price=cheap&page=zero")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success    bool `json:"success"`
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	// Мусорные значения эквивалентны отсутствующим фильтрам
	assert.Equal(t, 25, body.Pagination.Total)
}

func TestGetListing_ReturnsItemWithImages(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, "/properties/17")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool            `json:"success"`
		Data    ListingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "17", body.Data.ID)
	assert.NotEmpty(t, body.Data.Images)
}

func TestGetListing_UnknownIDReturns404Envelope(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, "/properties/no-such-id")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Property not found", body.Message)
}

func TestGetSimilarListings_ExcludesSelfAndHonorsLimit(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, "/properties/17/similar?limit=3")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool              `json:"success"`
		Data    []ListingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.LessOrEqual(t, len(body.Data), 3)
	for _, l := range body.Data {
		assert.NotEqual(t, "17", l.ID)
	}
}

func TestHealth_ReturnsPlainTextOK(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(t, router, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}
