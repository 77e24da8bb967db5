package handlers

import (
	"net/http"
	"time"

	"portfolio-relay/internal/models"
)

// HealthHandler serves the banner and liveness endpoints. Neither touches the
// provider.
type HealthHandler struct {
	serviceName string
	now         func() time.Time
}

func NewHealthHandler(serviceName string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, now: time.Now}
}

func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.BannerResponse{
		Message: "🚀 " + h.serviceName + " is live!",
		Endpoints: models.Endpoints{
			Health: "/api/health",
			Chat:   "/api/chat (POST)",
		},
		Status:    "online",
		Timestamp: models.Timestamp(h.now()),
	})
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.StatusResponse{
		Status:    "OK",
		Message:   h.serviceName + " is running",
		Timestamp: models.Timestamp(h.now()),
	})
}
