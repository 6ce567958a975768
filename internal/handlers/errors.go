package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON error body shared by all endpoints.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError writes a JSON error body with the given status code.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
