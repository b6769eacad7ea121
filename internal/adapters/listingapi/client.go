package listingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"listing-service/internal/contextkeys"
)

// ErrBaseURLRequired возвращается конструктором при пустом базовом URL.
var ErrBaseURLRequired = errors.New("listings api base URL is required (set LISTINGS_API_URL)")

const defaultRequestTimeout = 30 * time.Second

// Client - типизированный клиент remote Listings API.
// Все операции ходят по JSON, кроме Health (plain text) и
// загрузки файлов (multipart/form-data).
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// RequestConfig - пер-запросные опции.
type RequestConfig struct {
	// Токен для заголовка Authorization: Bearer. Пустой - заголовок не ставится.
	AccessToken string
	// Query-параметры. Параметры с пустым значением отбрасываются.
	Params url.Values
}

// NewClient валидирует базовый URL на этапе конструирования,
// чтобы неправильная конфигурация падала сразу, а не на первом запросе.
func NewClient(baseURL string) (*Client, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, ErrBaseURLRequired
	}
	return &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
	}, nil
}

// BaseURL возвращает нормализованный базовый URL (без завершающего слэша).
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) buildURL(path string, params url.Values) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	full := c.baseURL + path

	filtered := url.Values{}
	for key, values := range params {
		for _, v := range values {
			if v != "" {
				filtered.Add(key, v)
			}
		}
	}
	if encoded := filtered.Encode(); encoded != "" {
		full += "?" + encoded
	}
	return full
}

// doRequest выполняет запрос и декодирует успешный JSON-ответ в out.
// Неуспешный статус превращается в *APIError. Пустое тело успешного
// ответа - легальный случай (204, DELETE): out остается нетронутым.
// Непустое тело парсится и при nil out, чтобы поймать битый JSON.
func (c *Client) doRequest(ctx context.Context, method, path string, cfg RequestConfig, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, cfg.Params), body)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}

	if cfg.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.AccessToken)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIErrorFromResponse(resp.StatusCode, http.StatusText(resp.StatusCode), respBody)
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	// Непустое тело парсим всегда, даже когда вызывающему оно не нужно:
	// битый JSON на успешном статусе - ошибка сама по себе.
	if out == nil {
		out = &json.RawMessage{}
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return &APIError{
			Kind:       KindGeneric,
			Status:     resp.StatusCode,
			StatusText: http.StatusText(resp.StatusCode),
			Message:    "Invalid JSON response",
			Body:       respBody,
		}
	}
	return nil
}

// doJSON сериализует payload в JSON (nil payload - запрос без тела).
func (c *Client) doJSON(ctx context.Context, method, path string, cfg RequestConfig, payload, out interface{}) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}
	return c.doRequest(ctx, method, path, cfg, body, contentType, out)
}

// FileUpload - один файл для multipart-запроса.
type FileUpload struct {
	FieldName string
	FileName  string
	Content   []byte
}

// doMultipart собирает multipart/form-data тело из files.
func (c *Client) doMultipart(ctx context.Context, method, path string, cfg RequestConfig, files []FileUpload, out interface{}) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, file := range files {
		part, err := writer.CreateFormFile(file.FieldName, file.FileName)
		if err != nil {
			return fmt.Errorf("build multipart body: %w", err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return fmt.Errorf("build multipart body: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("build multipart body: %w", err)
	}
	return c.doRequest(ctx, method, path, cfg, &buf, writer.FormDataContentType(), out)
}

// Health дергает GET /health и возвращает тело как есть (ожидается "OK").
// JSON-конвейер здесь не используется: ответ текстовый.
func (c *Client) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL("/health", nil), nil)
	if err != nil {
		return "", fmt.Errorf("build request GET /health: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("GET /health: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response GET /health: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", newAPIErrorFromResponse(resp.StatusCode, http.StatusText(resp.StatusCode), body)
	}
	return string(body), nil
}
