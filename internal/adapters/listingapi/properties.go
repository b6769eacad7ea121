package listingapi

import (
	"context"
	"net/http"
	"net/url"

	"listing-service/internal/core/domain"
	"listing-service/internal/querycodec"
)

const propertiesBase = "/properties"

// CreatePropertyInput - тело создания объявления. Объявление создается
// черновиком, публикация - отдельной операцией.
type CreatePropertyInput struct {
	Title           string   `json:"title"`
	Description     *string  `json:"description,omitempty"`
	PropertyType    string   `json:"property_type"`
	ListingType     string   `json:"listing_type"`
	Price           float64  `json:"price"`
	Currency        *string  `json:"currency,omitempty"`
	PriceNegotiable *bool    `json:"price_negotiable,omitempty"`
	Country         *string  `json:"country,omitempty"`
	Region          *string  `json:"region,omitempty"`
	City            string   `json:"city"`
	Neighborhood    *string  `json:"neighborhood,omitempty"`
	Address         *string  `json:"address,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	Bedrooms        *int     `json:"bedrooms,omitempty"`
	Bathrooms       *int     `json:"bathrooms,omitempty"`
	AreaSqm         *float64 `json:"area_sqm,omitempty"`
	LandAreaSqm     *float64 `json:"land_area_sqm,omitempty"`
	YearBuilt       *int     `json:"year_built,omitempty"`
	Features        []string `json:"features,omitempty"`
}

// UpdatePropertyInput - частичное обновление: только непустые поля
// уходят на провод.
type UpdatePropertyInput struct {
	Title           *string  `json:"title,omitempty"`
	Description     *string  `json:"description,omitempty"`
	PropertyType    *string  `json:"property_type,omitempty"`
	ListingType     *string  `json:"listing_type,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Currency        *string  `json:"currency,omitempty"`
	PriceNegotiable *bool    `json:"price_negotiable,omitempty"`
	Country         *string  `json:"country,omitempty"`
	Region          *string  `json:"region,omitempty"`
	City            *string  `json:"city,omitempty"`
	Neighborhood    *string  `json:"neighborhood,omitempty"`
	Address         *string  `json:"address,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	Bedrooms        *int     `json:"bedrooms,omitempty"`
	Bathrooms       *int     `json:"bathrooms,omitempty"`
	AreaSqm         *float64 `json:"area_sqm,omitempty"`
	LandAreaSqm     *float64 `json:"land_area_sqm,omitempty"`
	YearBuilt       *int     `json:"year_built,omitempty"`
	Features        []string `json:"features,omitempty"`
}

// ListProperties запрашивает список объявлений с фильтрами и пагинацией.
// Запрос кодируется в минимальную строку: отсутствующие поля и
// умолчания в URL не попадают.
func (c *Client) ListProperties(ctx context.Context, query domain.SearchQuery) (*domain.ResultPage, error) {
	var envelope listPropertiesEnvelope
	err := c.doRequest(ctx, http.MethodGet, propertiesBase, RequestConfig{Params: querycodec.Encode(query)}, nil, "", &envelope)
	if err != nil {
		return nil, err
	}

	listings := make([]domain.Listing, 0, len(envelope.Data))
	for _, dto := range envelope.Data {
		listings = append(listings, dto.toDomain())
	}
	return &domain.ResultPage{
		Listings:   listings,
		Pagination: envelope.Pagination.toDomain(),
	}, nil
}

// GetProperty возвращает объявление по id вместе с его изображениями.
func (c *Client) GetProperty(ctx context.Context, id string) (*domain.ListingWithImages, error) {
	var envelope propertyEnvelope
	err := c.doRequest(ctx, http.MethodGet, propertiesBase+"/"+url.PathEscape(id), RequestConfig{}, nil, "", &envelope)
	if err != nil {
		return nil, err
	}
	listing := envelope.Data.toDomainWithImages()
	return &listing, nil
}

// CreateProperty создает объявление (черновик). Требует авторизации.
func (c *Client) CreateProperty(ctx context.Context, input CreatePropertyInput, accessToken string) (*domain.Listing, error) {
	var envelope propertyEnvelope
	err := c.doJSON(ctx, http.MethodPost, propertiesBase, RequestConfig{AccessToken: accessToken}, input, &envelope)
	if err != nil {
		return nil, err
	}
	listing := envelope.Data.toDomain()
	return &listing, nil
}

// UpdateProperty частично обновляет объявление. Только владелец.
func (c *Client) UpdateProperty(ctx context.Context, id string, input UpdatePropertyInput, accessToken string) (*domain.Listing, error) {
	var envelope propertyEnvelope
	err := c.doJSON(ctx, http.MethodPatch, propertiesBase+"/"+url.PathEscape(id), RequestConfig{AccessToken: accessToken}, input, &envelope)
	if err != nil {
		return nil, err
	}
	listing := envelope.Data.toDomain()
	return &listing, nil
}

// DeleteProperty удаляет объявление вместе с изображениями. Только владелец.
func (c *Client) DeleteProperty(ctx context.Context, id string, accessToken string) error {
	return c.doRequest(ctx, http.MethodDelete, propertiesBase+"/"+url.PathEscape(id), RequestConfig{AccessToken: accessToken}, nil, "", nil)
}

// UploadImages загружает изображения объявления (multipart, поле "images",
// до 10 файлов за запрос). Только владелец.
func (c *Client) UploadImages(ctx context.Context, propertyID string, images []FileUpload, accessToken string) ([]domain.ListingImage, error) {
	files := make([]FileUpload, 0, len(images))
	for _, img := range images {
		img.FieldName = "images"
		files = append(files, img)
	}

	var envelope imagesEnvelope
	err := c.doMultipart(ctx, http.MethodPost, propertiesBase+"/"+url.PathEscape(propertyID)+"/images", RequestConfig{AccessToken: accessToken}, files, &envelope)
	if err != nil {
		return nil, err
	}

	uploaded := make([]domain.ListingImage, 0, len(envelope.Data))
	for _, dto := range envelope.Data {
		uploaded = append(uploaded, dto.toDomain())
	}
	return uploaded, nil
}

// DeleteImage удаляет одно изображение объявления. Только владелец.
func (c *Client) DeleteImage(ctx context.Context, propertyID, imageID, accessToken string) error {
	path := propertiesBase + "/" + url.PathEscape(propertyID) + "/images/" + url.PathEscape(imageID)
	return c.doRequest(ctx, http.MethodDelete, path, RequestConfig{AccessToken: accessToken}, nil, "", nil)
}

// PublishProperty переводит объявление в статус active. Только владелец.
func (c *Client) PublishProperty(ctx context.Context, id string, accessToken string) (*domain.Listing, error) {
	var envelope propertyEnvelope
	err := c.doRequest(ctx, http.MethodPatch, propertiesBase+"/"+url.PathEscape(id)+"/publish", RequestConfig{AccessToken: accessToken}, nil, "", &envelope)
	if err != nil {
		return nil, err
	}
	listing := envelope.Data.toDomain()
	return &listing, nil
}

// UnpublishProperty возвращает объявление в черновики. Только владелец.
func (c *Client) UnpublishProperty(ctx context.Context, id string, accessToken string) (*domain.Listing, error) {
	var envelope propertyEnvelope
	err := c.doRequest(ctx, http.MethodPatch, propertiesBase+"/"+url.PathEscape(id)+"/unpublish", RequestConfig{AccessToken: accessToken}, nil, "", &envelope)
	if err != nil {
		return nil, err
	}
	listing := envelope.Data.toDomain()
	return &listing, nil
}
