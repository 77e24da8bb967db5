package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"portfolio-relay/internal/models"
	"portfolio-relay/internal/services"
)

const (
	msgInvalidBody   = "Invalid request body"
	msgInvalidAPIKey = "Invalid API key configuration"
	msgQuota         = "API quota exceeded. Please try again later."
	msgGeneric       = "Sorry, I encountered an error. Please try again."
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: message}
}

func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *services.ValidationError
		authErr       *services.AuthConfigError
		quotaErr      *services.QuotaExceededError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResp(validationErr.Message))
	case errors.As(err, &authErr):
		log.Printf("[%s] Error generating response: %v", r.Header.Get("X-Request-ID"), err)
		writeJSON(w, http.StatusUnauthorized, errorResp(msgInvalidAPIKey))
	case errors.As(err, &quotaErr):
		log.Printf("[%s] Error generating response: %v", r.Header.Get("X-Request-ID"), err)
		writeJSON(w, http.StatusTooManyRequests, errorResp(msgQuota))
	default:
		log.Printf("[%s] Error generating response: %v", r.Header.Get("X-Request-ID"), err)
		writeJSON(w, http.StatusInternalServerError, errorResp(msgGeneric))
	}
}
