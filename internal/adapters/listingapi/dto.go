package listingapi

import (
	"encoding/json"

	"listing-service/internal/core/domain"
)

// DTO провода API. Доменные структуры не знают про json-теги,
// поэтому у адаптера свои типы и свой маппинг.

type propertyDTO struct {
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

	Images []imageDTO `json:"images,omitempty"`
}

type imageDTO struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id"`
	ImageURL   string `json:"image_url"`
	CreatedAt  string `json:"created_at"`
}

type paginationDTO struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type listPropertiesEnvelope struct {
	Success    bool          `json:"success"`
	Data       []propertyDTO `json:"data"`
	Pagination paginationDTO `json:"pagination"`
}

type propertyEnvelope struct {
	Success bool        `json:"success"`
	Data    propertyDTO `json:"data"`
}

type imagesEnvelope struct {
	Success bool       `json:"success"`
	Data    []imageDTO `json:"data"`
}

type userEnvelope struct {
	Success bool    `json:"success"`
	Data    userDTO `json:"data"`
}

type userDTO struct {
	ID                string  `json:"id"`
	FullName          *string `json:"full_name"`
	Phone             *string `json:"phone"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	Role              string  `json:"role"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

type authSessionEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		User    json.RawMessage `json:"user"`
		Session json.RawMessage `json:"session"`
	} `json:"data"`
}

// Ответ refresh приходит без конверта success/data.
type tokenPairDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// Ответ загрузки аватара тоже без конверта.
type avatarUpdateDTO struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

func (dto propertyDTO) toDomain() domain.Listing {
	return domain.Listing{
		ID:              dto.ID,
		OwnerID:         dto.OwnerID,
		Title:           dto.Title,
		Description:     dto.Description,
		PropertyType:    dto.PropertyType,
		ListingType:     dto.ListingType,
		Status:          dto.Status,
		Price:           dto.Price,
		Currency:        dto.Currency,
		PriceNegotiable: dto.PriceNegotiable,
		Country:         dto.Country,
		Region:          dto.Region,
		City:            dto.City,
		Neighborhood:    dto.Neighborhood,
		Address:         dto.Address,
		Latitude:        dto.Latitude,
		Longitude:       dto.Longitude,
		Bedrooms:        dto.Bedrooms,
		Bathrooms:       dto.Bathrooms,
		AreaSqm:         dto.AreaSqm,
		LandAreaSqm:     dto.LandAreaSqm,
		YearBuilt:       dto.YearBuilt,
		Features:        dto.Features,
		MainImageURL:    dto.MainImageURL,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
		PublishedAt:     dto.PublishedAt,
		ExpiresAt:       dto.ExpiresAt,
	}
}

func (dto propertyDTO) toDomainWithImages() domain.ListingWithImages {
	images := make([]domain.ListingImage, 0, len(dto.Images))
	for _, img := range dto.Images {
		images = append(images, img.toDomain())
	}
	return domain.ListingWithImages{
		Listing: dto.toDomain(),
		Images:  images,
	}
}

func (dto imageDTO) toDomain() domain.ListingImage {
	return domain.ListingImage{
		ID:         dto.ID,
		PropertyID: dto.PropertyID,
		ImageURL:   dto.ImageURL,
		CreatedAt:  dto.CreatedAt,
	}
}

func (dto userDTO) toDomain() domain.User {
	return domain.User{
		ID:                dto.ID,
		FullName:          dto.FullName,
		Phone:             dto.Phone,
		ProfilePictureURL: dto.ProfilePictureURL,
		Role:              dto.Role,
		CreatedAt:         dto.CreatedAt,
		UpdatedAt:         dto.UpdatedAt,
	}
}

func (dto paginationDTO) toDomain() domain.Pagination {
	return domain.Pagination{
		Page:       dto.Page,
		Limit:      dto.Limit,
		Total:      dto.Total,
		TotalPages: dto.TotalPages,
	}
}
