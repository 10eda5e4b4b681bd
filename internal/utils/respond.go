package utils

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes an arbitrary payload with the given status code.
func WriteJSON(w http.ResponseWriter, payload any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteJSONMessage writes the canonical {message} error/info body.
func WriteJSONMessage(w http.ResponseWriter, message string, code int) {
	WriteJSON(w, map[string]string{"message": message}, code)
}

// WriteJSONError includes the underlying error text next to the message.
func WriteJSONError(w http.ResponseWriter, message string, err error, code int) {
	body := map[string]string{"message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	WriteJSON(w, body, code)
}
