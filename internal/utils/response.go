package utils

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes {"message": msg}.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}

// ErrorDetails writes {"message": msg, "details": err} for fetch failures
// that surface the underlying store error.
func ErrorDetails(w http.ResponseWriter, status int, msg string, err error) {
	JSON(w, status, map[string]string{"message": msg, "details": err.Error()})
}
