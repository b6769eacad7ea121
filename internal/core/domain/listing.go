package domain

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Допустимые значения перечислений. Совпадают с токенами,
// которые ходят в query-параметрах и в JSON API.
const (
	PropertyTypeApartment  = "apartment"
	PropertyTypeHouse      = "house"
	PropertyTypeLand       = "land"
	PropertyTypeCommercial = "commercial"
	PropertyTypeVilla      = "villa"
	PropertyTypeDuplex     = "duplex"
	PropertyTypeStudio     = "studio"

	ListingTypeSale = "sale"
	ListingTypeRent = "rent"

	StatusActive  = "active"
	StatusPending = "pending"
	StatusSold    = "sold"
	StatusRented  = "rented"
	StatusExpired = "expired"
	StatusDraft   = "draft"
)

var propertyTypes = map[string]bool{
	PropertyTypeApartment:  true,
	PropertyTypeHouse:      true,
	PropertyTypeLand:       true,
	PropertyTypeCommercial: true,
	PropertyTypeVilla:      true,
	PropertyTypeDuplex:     true,
	PropertyTypeStudio:     true,
}

var listingTypes = map[string]bool{
	ListingTypeSale: true,
	ListingTypeRent: true,
}

var listingStatuses = map[string]bool{
	StatusActive:  true,
	StatusPending: true,
	StatusSold:    true,
	StatusRented:  true,
	StatusExpired: true,
	StatusDraft:   true,
}

func IsPropertyType(v string) bool  { return propertyTypes[v] }
func IsListingType(v string) bool   { return listingTypes[v] }
func IsListingStatus(v string) bool { return listingStatuses[v] }

// Listing - одно объявление о недвижимости. Запись неизменяема:
// создается один раз при инициализации хранилища (или приходит из API)
// и дальше только читается.
type Listing struct {
	ID      string
	OwnerID string

	Title       string
	Description *string

	PropertyType string
	ListingType  string
	Status       string

	Price           float64
	Currency        string
	PriceNegotiable bool

	Country      string
	Region       *string
	City         string
	Neighborhood *string
	Address      *string
	Latitude     *float64
	Longitude    *float64

	Bedrooms    *int
	Bathrooms   *int
	AreaSqm     *float64
	LandAreaSqm *float64
	YearBuilt   *int
	Features    []string

	MainImageURL *string

	// Временные метки храним строками ISO-8601: они корректно
	// сортируются лексикографически, и парсить их незачем.
	CreatedAt   string
	UpdatedAt   string
	PublishedAt *string
	ExpiresAt   *string
}

// ListingImage - одно фото объявления.
type ListingImage struct {
	ID         string
	PropertyID string
	ImageURL   string
	CreatedAt  string
}

// ListingWithImages - объявление вместе с упорядоченным списком фото
// (для страницы деталей).
type ListingWithImages struct {
	Listing
	Images []ListingImage
}

// Location собирает человекочитаемый адрес из непустых частей.
func (l Listing) Location() string {
	parts := make([]string, 0, 4)
	if l.Neighborhood != nil && *l.Neighborhood != "" {
		parts = append(parts, *l.Neighborhood)
	}
	if l.City != "" {
		parts = append(parts, l.City)
	}
	if l.Region != nil && *l.Region != "" {
		parts = append(parts, *l.Region)
	}
	if l.Country != "" {
		parts = append(parts, l.Country)
	}
	return strings.Join(parts, ", ")
}

var pricePrinter = message.NewPrinter(language.English)

// PriceLabel возвращает цену с разделителями разрядов для витрины.
func (l Listing) PriceLabel() string {
	return pricePrinter.Sprintf("%v", number.Decimal(l.Price))
}

// ImageURLs возвращает адреса фото для галереи: все изображения,
// а при их отсутствии - главное фото.
func (l ListingWithImages) ImageURLs() []string {
	if len(l.Images) > 0 {
		urls := make([]string, len(l.Images))
		for i, img := range l.Images {
			urls[i] = img.ImageURL
		}
		return urls
	}
	if l.MainImageURL != nil && *l.MainImageURL != "" {
		return []string{*l.MainImageURL}
	}
	return nil
}
