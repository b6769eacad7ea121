package listingapi

import (
	"encoding/json"
	"fmt"
)

// ErrorKind - вид ошибки API. Вместо иерархии типов используем
// размеченное объединение: вызывающий код матчит Kind исчерпывающе,
// без проверок динамического типа.
type ErrorKind string

const (
	KindValidation   ErrorKind = "validation"
	KindUnauthorized ErrorKind = "unauthorized"
	KindForbidden    ErrorKind = "forbidden"
	KindNotFound     ErrorKind = "notFound"
	KindGeneric      ErrorKind = "generic"
)

const fallbackMessage = "Request failed"

// APIError - типизированная ошибка неуспешного ответа API.
type APIError struct {
	Kind       ErrorKind
	Status     int
	StatusText string
	Message    string

	// Сырое тело ответа, как пришло с провода.
	Body []byte

	// Пофилдовые сообщения валидации. Заполнено только для KindValidation.
	Errors map[string][]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("listings api: %d %s: %s", e.Status, e.StatusText, e.Message)
}

// FirstError возвращает первое сообщение для поля field, а при пустом
// field (или отсутствии такого поля) - первое сообщение вообще.
func (e *APIError) FirstError(field string) string {
	if field != "" {
		if msgs := e.Errors[field]; len(msgs) > 0 {
			return msgs[0]
		}
	}
	for _, msgs := range e.Errors {
		if len(msgs) > 0 {
			return msgs[0]
		}
	}
	return ""
}

// newAPIErrorFromResponse классифицирует неуспешный ответ.
// Сначала смотрим на статус-код (400/401/403/404 получают свои виды),
// внутри 400 вид определяет форма тела.
func newAPIErrorFromResponse(status int, statusText string, body []byte) *APIError {
	message, fieldErrors := parseErrorBody(body, statusText)

	apiErr := &APIError{
		Kind:       KindGeneric,
		Status:     status,
		StatusText: statusText,
		Message:    message,
		Body:       body,
	}

	switch {
	case status == 400 && fieldErrors != nil:
		apiErr.Kind = KindValidation
		apiErr.Errors = fieldErrors
	case status == 401:
		apiErr.Kind = KindUnauthorized
	case status == 403:
		apiErr.Kind = KindForbidden
	case status == 404:
		apiErr.Kind = KindNotFound
	}

	return apiErr
}

// parseErrorBody вытаскивает из тела сообщение и, если форма тела
// валидационная, карту пофилдовых ошибок. Поддерживаемые формы:
//
//	{"success": false, "errors": {...}}  -> валидация
//	{"success": false, "message": "..."} -> сообщение
//	{"message": "..."}                   -> сообщение
//
// Непарсибельное тело не сворачивается в фолбэк: сообщением становится
// сырой текст тела, затем статус-текст, и только потом фиксированная строка.
func parseErrorBody(body []byte, statusText string) (string, map[string][]string) {
	if len(body) == 0 {
		return fallbackMessage, nil
	}

	var parsed struct {
		Success *bool                      `json:"success"`
		Message string                     `json:"message"`
		Errors  map[string]json.RawMessage `json:"errors"`
	}
	if json.Unmarshal(body, &parsed) != nil {
		message := string(body)
		if message == "" {
			message = statusText
		}
		if message == "" {
			message = fallbackMessage
		}
		return message, nil
	}

	if parsed.Success != nil && !*parsed.Success && len(parsed.Errors) > 0 {
		fieldErrors := make(map[string][]string, len(parsed.Errors))
		for field, raw := range parsed.Errors {
			// Значение может быть как списком сообщений, так и одиночной строкой.
			var list []string
			if err := json.Unmarshal(raw, &list); err == nil {
				fieldErrors[field] = list
				continue
			}
			var single string
			if err := json.Unmarshal(raw, &single); err == nil {
				fieldErrors[field] = []string{single}
				continue
			}
			fieldErrors[field] = []string{string(raw)}
		}
		message := parsed.Message
		if message == "" {
			message = "Validation failed"
		}
		return message, fieldErrors
	}

	if parsed.Message != "" {
		return parsed.Message, nil
	}
	return fallbackMessage, nil
}
