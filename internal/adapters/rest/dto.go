package rest

import "listing-service/internal/core/domain"

// DTO ответов REST API. Доменные структуры без json-тегов,
// форма провода живет здесь.

type ListingResponse struct {
	ID              string   `json:"id"`
	OwnerID         string   `json:"owner_id"`
	Title           string   `json:"title"`
	Description     *string  `json:"description"`
	PropertyType    string   `json:"property_type"`
	ListingType     string   `json:"listing_type"`
	Status          string   `json:"status"`
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
	PriceNegotiable bool     `json:"price_negotiable"`
	Country         string   `json:"country"`
	Region          *string  `json:"region"`
	City            string   `json:"city"`
	Neighborhood    *string  `json:"neighborhood"`
	Address         *string  `json:"address"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Bedrooms        *int     `json:"bedrooms"`
	Bathrooms       *int     `json:"bathrooms"`
	AreaSqm         *float64 `json:"area_sqm"`
	LandAreaSqm     *float64 `json:"land_area_sqm"`
	YearBuilt       *int     `json:"year_built"`
	Features        []string `json:"features"`
	MainImageURL    *string  `json:"main_image_url"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
	PublishedAt     *string  `json:"published_at"`
	ExpiresAt       *string  `json:"expires_at"`

	Images []ImageResponse `json:"images,omitempty"`
}

type ImageResponse struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id"`
	ImageURL   string `json:"image_url"`
	CreatedAt  string `json:"created_at"`
}

type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type listEnvelope struct {
	Success    bool               `json:"success"`
	Data       []ListingResponse  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

type itemEnvelope struct {
	Success bool            `json:"success"`
	Data    ListingResponse `json:"data"`
}

type similarEnvelope struct {
	Success bool              `json:"success"`
	Data    []ListingResponse `json:"data"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func listingToResponse(l domain.Listing) ListingResponse {
	return ListingResponse{
		ID:              l.ID,
		OwnerID:         l.OwnerID,
		Title:           l.Title,
		Description:     l.Description,
		PropertyType:    l.PropertyType,
		ListingType:     l.ListingType,
		Status:          l.Status,
		Price:           l.Price,
		Currency:        l.Currency,
		PriceNegotiable: l.PriceNegotiable,
		Country:         l.Country,
		Region:          l.Region,
		City:            l.City,
		Neighborhood:    l.Neighborhood,
		Address:         l.Address,
		Latitude:        l.Latitude,
		Longitude:       l.Longitude,
		Bedrooms:        l.Bedrooms,
		Bathrooms:       l.Bathrooms,
		AreaSqm:         l.AreaSqm,
		LandAreaSqm:     l.LandAreaSqm,
		YearBuilt:       l.YearBuilt,
		Features:        l.Features,
		MainImageURL:    l.MainImageURL,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
		PublishedAt:     l.PublishedAt,
		ExpiresAt:       l.ExpiresAt,
	}
}

func listingWithImagesToResponse(l domain.ListingWithImages) ListingResponse {
	resp := listingToResponse(l.Listing)
	resp.Images = make([]ImageResponse, len(l.Images))
	for i, img := range l.Images {
		resp.Images[i] = ImageResponse{
			ID:         img.ID,
			PropertyID: img.PropertyID,
			ImageURL:   img.ImageURL,
			CreatedAt:  img.CreatedAt,
		}
	}
	return resp
}
