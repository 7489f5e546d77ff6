package utils

import (
	"encoding/json"
	"net/http"

	"mockprep/interview/internal/models"
)

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Error writes {"detail": message} with the given status
func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, models.ErrorResponse{Detail: message})
}
