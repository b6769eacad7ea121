package listingapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIErrorFromResponse_ValidationShape(t *testing.T) {
	body := []byte(`{"success":false,"errors":{"email":["is required","must be valid"],"password":["too short"]}}`)

	apiErr := newAPIErrorFromResponse(400, "Bad Request", body)

	assert.Equal(t, KindValidation, apiErr.Kind)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "Validation failed", apiErr.Message)
	require.NotNil(t, apiErr.Errors)
	assert.Equal(t, "is required", apiErr.FirstError("email"))
	assert.Equal(t, "too short", apiErr.FirstError("password"))
	// Неизвестное поле - первое попавшееся сообщение
	assert.NotEmpty(t, apiErr.FirstError("missing_field"))
}

func TestNewAPIErrorFromResponse_ValidationWithScalarMessages(t *testing.T) {
	body := []byte(`{"success":false,"errors":{"title":"is required"}}`)

	apiErr := newAPIErrorFromResponse(400, "Bad Request", body)

	assert.Equal(t, KindValidation, apiErr.Kind)
	assert.Equal(t, "is required", apiErr.FirstError("title"))
}

func TestNewAPIErrorFromResponse_400WithoutErrorsIsGeneric(t *testing.T) {
	body := []byte(`{"success":false,"message":"Malformed request"}`)

	apiErr := newAPIErrorFromResponse(400, "Bad Request", body)

	assert.Equal(t, KindGeneric, apiErr.Kind)
	assert.Equal(t, "Malformed request", apiErr.Message)
}

func TestNewAPIErrorFromResponse_StatusDrivenKinds(t *testing.T) {
	cases := []struct {
		status int
		kind   ErrorKind
	}{
		{401, KindUnauthorized},
		{403, KindForbidden},
		{404, KindNotFound},
		{500, KindGeneric},
		{502, KindGeneric},
	}
	for _, tc := range cases {
		apiErr := newAPIErrorFromResponse(tc.status, "", []byte(`{"message":"nope"}`))
		assert.Equal(t, tc.kind, apiErr.Kind, "status %d", tc.status)
		assert.Equal(t, "nope", apiErr.Message)
	}
}

func TestNewAPIErrorFromResponse_404IgnoresBodyShape(t *testing.T) {
	// Даже с валидационным телом 404 остается notFound
	body := []byte(`{"success":false,"errors":{"id":["unknown"]}}`)
	apiErr := newAPIErrorFromResponse(404, "Not Found", body)
	assert.Equal(t, KindNotFound, apiErr.Kind)
}

func TestNewAPIErrorFromResponse_UnparseableBody(t *testing.T) {
	// Не-JSON тело попадает в сообщение как есть
	apiErr := newAPIErrorFromResponse(500, "Internal Server Error", []byte("<html>boom</html>"))

	assert.Equal(t, KindGeneric, apiErr.Kind)
	assert.Equal(t, "<html>boom</html>", apiErr.Message)
	assert.Equal(t, []byte("<html>boom</html>"), apiErr.Body)
}

func TestNewAPIErrorFromResponse_EmptyBody(t *testing.T) {
	apiErr := newAPIErrorFromResponse(500, "Internal Server Error", nil)

	assert.Equal(t, KindGeneric, apiErr.Kind)
	assert.Equal(t, "Request failed", apiErr.Message)
}

func TestNewAPIErrorFromResponse_PlainMessageShape(t *testing.T) {
	apiErr := newAPIErrorFromResponse(500, "Internal Server Error", []byte(`{"message":"Something broke"}`))
	assert.Equal(t, "Something broke", apiErr.Message)
}

func TestAPIError_ErrorString(t *testing.T) {
	apiErr := newAPIErrorFromResponse(404, "Not Found", []byte(`{"message":"Property not found"}`))
	assert.Equal(t, "listings api: 404 Not Found: Property not found", apiErr.Error())
}
