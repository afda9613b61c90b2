package utils

import (
	"encoding/json"
	"net/http"
)

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// errorBody mirrors dto.ErrorResponse. It is declared here so the payload
// package can depend on these helpers without a cycle.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// WriteErrorResponse writes a JSON error response with a short error label and
// a human-readable message
func WriteErrorResponse(w http.ResponseWriter, status int, errorLabel, message string) {
	WriteJSONResponse(w, status, errorBody{
		Error:   errorLabel,
		Message: message,
	})
}

// DecodeJSONRequest decodes the request body into dst and writes a 400 response
// on failure. Callers should return immediately when an error is returned.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return err
	}
	return nil
}
