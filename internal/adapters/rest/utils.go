package rest

import (
	"encoding/json"
	"net/http"
)

// RespondWithJSON сериализует payload и отправляет его с заданным статусом.
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// WriteJSONError отправляет ошибку в стандартном конверте
// {"success": false, "message": ...}.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, errorEnvelope{
		Success: false,
		Message: message,
	})
}
