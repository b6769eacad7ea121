package memstore

import "listing-service/internal/core/domain"

// DTO сид-файла. Отдельная структура изолирует доменную модель
// от формата датасета на диске.
type seedListing struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	PropertyType    string    `json:"property_type"`
	ListingType     string    `json:"listing_type"`
	Status          string    `json:"status"`
	Price           float64   `json:"price"`
	Currency        string    `json:"currency"`
	PriceNegotiable bool      `json:"price_negotiable"`
	Country         string    `json:"country"`
	Region          *string   `json:"region"`
	City            string    `json:"city"`
	Neighborhood    *string   `json:"neighborhood"`
	Address         *string   `json:"address"`
	Latitude        *float64  `json:"latitude"`
	Longitude       *float64  `json:"longitude"`
	Bedrooms        *int      `json:"bedrooms"`
	Bathrooms       *int      `json:"bathrooms"`
	AreaSqm         *float64  `json:"area_sqm"`
	LandAreaSqm     *float64  `json:"land_area_sqm"`
	YearBuilt       *int      `json:"year_built"`
	Features        []string  `json:"features"`
	MainImageURL    *string   `json:"main_image_url"`
	CreatedAt       string    `json:"created_at"`
	UpdatedAt       string    `json:"updated_at"`
	PublishedAt     *string   `json:"published_at"`
	ExpiresAt       *string   `json:"expires_at"`
	Images          []seedImg `json:"images"`
}

type seedImg struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id"`
	ImageURL   string `json:"image_url"`
	CreatedAt  string `json:"created_at"`
}

func (s seedListing) toDomain() domain.ListingWithImages {
	images := make([]domain.ListingImage, len(s.Images))
	for i, img := range s.Images {
		images[i] = domain.ListingImage{
			ID:         img.ID,
			PropertyID: img.PropertyID,
			ImageURL:   img.ImageURL,
			CreatedAt:  img.CreatedAt,
		}
	}
	return domain.ListingWithImages{
		Listing: domain.Listing{
			ID:              s.ID,
			OwnerID:         s.OwnerID,
			Title:           s.Title,
			Description:     s.Description,
			PropertyType:    s.PropertyType,
			ListingType:     s.ListingType,
			Status:          s.Status,
			Price:           s.Price,
			Currency:        s.Currency,
			PriceNegotiable: s.PriceNegotiable,
			Country:         s.Country,
			Region:          s.Region,
			City:            s.City,
			Neighborhood:    s.Neighborhood,
			Address:         s.Address,
			Latitude:        s.Latitude,
			Longitude:       s.Longitude,
			Bedrooms:        s.Bedrooms,
			Bathrooms:       s.Bathrooms,
			AreaSqm:         s.AreaSqm,
			LandAreaSqm:     s.LandAreaSqm,
			YearBuilt:       s.YearBuilt,
			Features:        s.Features,
			MainImageURL:    s.MainImageURL,
			CreatedAt:       s.CreatedAt,
			UpdatedAt:       s.UpdatedAt,
			PublishedAt:     s.PublishedAt,
			ExpiresAt:       s.ExpiresAt,
		},
		Images: images,
	}
}
