package postgres_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// PostgresListingRepository - реализация ListingStorePort для PostgreSQL.
type PostgresListingRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresListingRepository - конструктор.
func NewPostgresListingRepository(pool *pgxpool.Pool) (*PostgresListingRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresListingRepository{pool: pool}, nil
}

const listingColumns = `id, owner_id, title, description, property_type, listing_type, status,
	price, currency, price_negotiable, country, region, city, neighborhood, address,
	latitude, longitude, bedrooms, bathrooms, area_sqm, land_area_sqm, year_built, features,
	main_image_url, created_at, updated_at, published_at, expires_at`

// FindAll возвращает все объявления. Порядок детерминированный, но
// финальную сортировку выполняет вызывающая сторона.
func (r *PostgresListingRepository) FindAll(ctx context.Context) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "PostgresListingRepository",
		"method":    "FindAll",
	})

	query := `SELECT ` + listingColumns + ` FROM properties ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query listings", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			repoLogger.Error("Failed to scan listing row", err, nil)
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during listings iteration", err, nil)
		return nil, fmt.Errorf("error during listings iteration: %w", err)
	}

	return listings, nil
}

// FindByID возвращает объявление с изображениями.
func (r *PostgresListingRepository) FindByID(ctx context.Context, id string) (*domain.ListingWithImages, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "PostgresListingRepository",
		"method":     "FindByID",
		"listing_id": id,
	})

	query := `SELECT ` + listingColumns + ` FROM properties WHERE id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	listing, err := scanListing(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		repoLogger.Error("Failed to query listing by id", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query listing by id: %w", err)
	}

	imagesQuery := `SELECT id, property_id, image_url, created_at
		FROM property_images WHERE property_id = $1 ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, imagesQuery, id)
	if err != nil {
		repoLogger.Error("Failed to query listing images", err, port.Fields{"query": imagesQuery})
		return nil, fmt.Errorf("failed to query listing images: %w", err)
	}
	defer rows.Close()

	var images []domain.ListingImage
	for rows.Next() {
		var img domain.ListingImage
		var createdAt time.Time
		if err := rows.Scan(&img.ID, &img.PropertyID, &img.ImageURL, &createdAt); err != nil {
			repoLogger.Error("Failed to scan image row", err, nil)
			return nil, fmt.Errorf("failed to scan listing image: %w", err)
		}
		img.CreatedAt = formatTimestamp(createdAt)
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during images iteration", err, nil)
		return nil, fmt.Errorf("error during images iteration: %w", err)
	}

	return &domain.ListingWithImages{Listing: listing, Images: images}, nil
}

// scanListing разбирает одну строку properties в доменную структуру.
func scanListing(row pgx.Row) (domain.Listing, error) {
	var l domain.Listing
	var createdAt, updatedAt time.Time
	var publishedAt, expiresAt *time.Time

	err := row.Scan(
		&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.PropertyType, &l.ListingType, &l.Status,
		&l.Price, &l.Currency, &l.PriceNegotiable, &l.Country, &l.Region, &l.City, &l.Neighborhood,
		&l.Address, &l.Latitude, &l.Longitude, &l.Bedrooms, &l.Bathrooms, &l.AreaSqm,
		&l.LandAreaSqm, &l.YearBuilt, &l.Features,
		&l.MainImageURL, &createdAt, &updatedAt, &publishedAt, &expiresAt,
	)
	if err != nil {
		return domain.Listing{}, err
	}

	l.CreatedAt = formatTimestamp(createdAt)
	l.UpdatedAt = formatTimestamp(updatedAt)
	if publishedAt != nil {
		s := formatTimestamp(*publishedAt)
		l.PublishedAt = &s
	}
	if expiresAt != nil {
		s := formatTimestamp(*expiresAt)
		l.ExpiresAt = &s
	}
	return l, nil
}

// formatTimestamp приводит время к той же ISO-8601 форме, что и remote API.
// Лексикографический порядок таких строк совпадает с хронологическим.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
