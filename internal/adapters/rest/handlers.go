package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
	"listing-service/internal/querycodec"
)

// ListingsHandler обрабатывает публичные запросы к каталогу объявлений.
type ListingsHandler struct {
	searchUC  usecases_port.SearchListingsUseCasePort
	getByIDUC usecases_port.GetListingByIDUseCasePort
	similarUC usecases_port.GetSimilarListingsUseCasePort
}

// NewListingsHandler - конструктор.
func NewListingsHandler(searchUC usecases_port.SearchListingsUseCasePort,
	getByIDUC usecases_port.GetListingByIDUseCasePort,
	similarUC usecases_port.GetSimilarListingsUseCasePort) *ListingsHandler {
	return &ListingsHandler{
		searchUC:  searchUC,
		getByIDUC: getByIDUC,
		similarUC: similarUC,
	}
}

// SearchListings обрабатывает GET /properties.
// Декодирование строки запроса толерантное: мусорные значения
// эквивалентны отсутствующим, ошибки ввода здесь невозможны.
func (h *ListingsHandler) SearchListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SearchListings"})

	query := querycodec.Decode(r.URL.Query())

	handlerLogger := logger.WithFields(port.Fields{
		"q":    query.Q,
		"city": query.City,
		"page": query.Page,
	})
	handlerLogger.Info("Processing search request", nil)

	result, err := h.searchUC.Execute(r.Context(), query)
	if err != nil {
		handlerLogger.Error("Search listings use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to search listings")
		return
	}

	response := listEnvelope{
		Success: true,
		Data:    make([]ListingResponse, len(result.Listings)),
		Pagination: PaginationResponse{
			Page:       result.Pagination.Page,
			Limit:      result.Pagination.Limit,
			Total:      result.Pagination.Total,
			TotalPages: result.Pagination.TotalPages,
		},
	}
	for i, listing := range result.Listings {
		response.Data[i] = listingToResponse(listing)
	}

	handlerLogger.Info("Search completed", port.Fields{
		"total_found":   result.Pagination.Total,
		"items_on_page": len(result.Listings),
	})
	RespondWithJSON(w, http.StatusOK, response)
}

// GetListing обрабатывает GET /properties/{listingID}.
func (h *ListingsHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetListing"})

	listingID := chi.URLParam(r, "listingID")
	handlerLogger := logger.WithFields(port.Fields{"listing_id": listingID})
	handlerLogger.Info("Processing request to get listing", nil)

	listing, err := h.getByIDUC.Execute(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		handlerLogger.Error("Get listing use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve listing")
		return
	}

	RespondWithJSON(w, http.StatusOK, itemEnvelope{
		Success: true,
		Data:    listingWithImagesToResponse(*listing),
	})
}

// GetSimilarListings обрабатывает GET /properties/{listingID}/similar.
func (h *ListingsHandler) GetSimilarListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetSimilarListings"})

	listingID := chi.URLParam(r, "listingID")
	// Мусорный limit эквивалентен отсутствующему, use case подставит умолчание
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	handlerLogger := logger.WithFields(port.Fields{"listing_id": listingID, "limit": limit})
	handlerLogger.Info("Processing request to get similar listings", nil)

	similar, err := h.similarUC.Execute(r.Context(), listingID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		handlerLogger.Error("Get similar listings use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve similar listings")
		return
	}

	response := similarEnvelope{
		Success: true,
		Data:    make([]ListingResponse, len(similar)),
	}
	for i, listing := range similar {
		response.Data[i] = listingToResponse(listing)
	}
	RespondWithJSON(w, http.StatusOK, response)
}

// Health обрабатывает GET /health. Отдает plain text, как и remote API.
func (h *ListingsHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
