// internal/handlers/health.go
package handlers

import (
	"net/http"

	"qr-code-backend/internal/models"
	"qr-code-backend/pkg/utils"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := models.HealthResponse{
		Status:  "healthy",
		Message: "Server is running",
	}
	utils.SendJSONResponse(w, http.StatusOK, response)
}
