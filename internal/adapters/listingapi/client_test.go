package listingapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-service/internal/core/domain"
)

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient("")
	assert.ErrorIs(t, err, ErrBaseURLRequired)

	_, err = NewClient("   ")
	assert.ErrorIs(t, err, ErrBaseURLRequired)
}

func TestNewClient_TrimsTrailingSlashes(t *testing.T) {
	client, err := NewClient("https://api.example.com///")
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", client.BaseURL())
}

func TestListProperties_SendsMinimalQueryAndParsesEnvelope(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/properties", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": [{"id":"17","owner_id":"o1","title":"Flat","property_type":"apartment",
				"listing_type":"sale","status":"active","price":62000,"currency":"XAF",
				"city":"Douala","created_at":"2025-02-03T12:00:00.000Z","updated_at":"2025-02-03T12:00:00.000Z"}],
			"pagination": {"page":1,"limit":20,"total":1,"totalPages":1}
		}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	minPrice := 40000.0
	result, err := client.ListProperties(context.Background(), domain.SearchQuery{
		City:     "Douala",
		MinPrice: &minPrice,
	})
	require.NoError(t, err)

	// Отсутствующие поля и дефолты в query-строку не попадают
	assert.Equal(t, "city=Douala&min_price=40000", gotQuery)

	require.Len(t, result.Listings, 1)
	assert.Equal(t, "17", result.Listings[0].ID)
	assert.Equal(t, 62000.0, result.Listings[0].Price)
	assert.Equal(t, 1, result.Pagination.Total)
}

func TestGetProperty_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"Property not found"}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	listing, err := client.GetProperty(context.Background(), "missing")
	assert.Nil(t, listing)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindNotFound, apiErr.Kind)
	assert.Equal(t, "Property not found", apiErr.Message)
}

func TestAuthenticatedRequestsCarryBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	require.NoError(t, client.DeleteProperty(context.Background(), "42", "secret-token"))
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestEmptySuccessBodyIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	assert.NoError(t, client.DeleteAvatar(context.Background(), "token"))
}

func TestMalformedJSONOnSuccessIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": tru`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.GetProperty(context.Background(), "1")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindGeneric, apiErr.Kind)
	assert.Equal(t, "Invalid JSON response", apiErr.Message)
}

func TestMalformedJSONOnDiscardedBodyIsAnError(t *testing.T) {
	// Даже когда результат вызывающему не нужен (DELETE),
	// непустое тело успешного ответа обязано быть валидным JSON
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not-json"))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	err = client.DeleteProperty(context.Background(), "1", "token")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindGeneric, apiErr.Kind)
	assert.Equal(t, "Invalid JSON response", apiErr.Message)
}

func TestRegister_DefaultsAccountTypeToUser(t *testing.T) {
	var gotType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		gotType = r.URL.Query().Get("type")
		w.Write([]byte(`{"success":true,"data":{"user":{"id":"u1"},"session":{"access_token":"at"}}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	session, err := client.Register(context.Background(), RegisterInput{
		Email: "a@b.cm", Password: "secret123", FullName: "Test User",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "user", gotType)
	assert.JSONEq(t, `{"id":"u1"}`, string(session.User))
}

func TestRefreshToken_ParsesUnwrappedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/refresh-token", r.URL.Path)
		w.Write([]byte(`{"access_token":"new-at","refresh_token":"new-rt","expires_in":3600}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	pair, err := client.RefreshToken(context.Background(), "old-rt")
	require.NoError(t, err)
	assert.Equal(t, "new-at", pair.AccessToken)
	assert.Equal(t, "new-rt", pair.RefreshToken)
	assert.Equal(t, 3600, pair.ExpiresIn)
}

func TestUploadImages_SendsMultipartImagesField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		files := r.MultipartForm.File["images"]
		require.Len(t, files, 2)
		assert.Equal(t, "front.jpg", files[0].Filename)

		w.Write([]byte(`{"success":true,"data":[
			{"id":"img-1","property_id":"42","image_url":"https://cdn/1.jpg","created_at":"2025-02-03T12:00:00.000Z"},
			{"id":"img-2","property_id":"42","image_url":"https://cdn/2.jpg","created_at":"2025-02-03T12:00:00.000Z"}
		]}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	images, err := client.UploadImages(context.Background(), "42", []FileUpload{
		{FileName: "front.jpg", Content: []byte("jpeg-bytes")},
		{FileName: "back.jpg", Content: []byte("jpeg-bytes")},
	}, "token")
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "img-1", images[0].ID)
}

func TestHealth_ReturnsPlainText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("OK"))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	status, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OK", status)
}

func TestHealth_Non2xxIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.Health(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 503, apiErr.Status)
}
