// Package httputil provides HTTP response helpers and middleware.
package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Envelope is the uniform response shape of the API.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// JSON writes a raw JSON response without envelope.
func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("failed to encode response", "error", err)
		}
	}
}

// Success writes a {"success":true, "message":..., "data":...} envelope.
func Success(w http.ResponseWriter, status int, message string, data interface{}) {
	JSON(w, status, Envelope{Success: true, Message: message, Data: data})
}

// Error writes a {"success":false, "message":...} envelope.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: false, Message: message})
}

// ValidationError writes a 400 response. If err is validator.ValidationErrors,
// the envelope carries per-field details under "errors".
func ValidationError(w http.ResponseWriter, err error) {
	var fieldErrors []map[string]string
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		fieldErrors = make([]map[string]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			fieldErrors = append(fieldErrors, map[string]string{
				"field":   e.Field(),
				"message": e.Tag(),
			})
		}
	} else {
		fieldErrors = []map[string]string{{"message": err.Error()}}
	}

	JSON(w, http.StatusBadRequest, Envelope{
		Success: false,
		Message: "validation error",
		Errors:  fieldErrors,
	})
}
