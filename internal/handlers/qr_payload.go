// internal/handlers/qr_payload.go
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"qr-code-backend/internal/models"
	"qr-code-backend/internal/services"
	"qr-code-backend/pkg/utils"
)

// QRPayloadHandler exposes the payload builders and the rendering entry
// points (signed URL, embedded markup).
type QRPayloadHandler struct {
	payloadService services.PayloadService
	renderService  services.RenderService
}

func NewQRPayloadHandler(payloadService services.PayloadService, renderService services.RenderService) *QRPayloadHandler {
	return &QRPayloadHandler{
		payloadService: payloadService,
		renderService:  renderService,
	}
}

// BuildPayload returns the canonical payload text for the kind in the path.
func (h *QRPayloadHandler) BuildPayload(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	var req models.PayloadRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.SendErrorResponse(w, err)
		return
	}

	data, err := h.payloadService.Build(kind, &req)
	if err != nil {
		utils.SendErrorResponse(w, err)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, models.PayloadResponse{Kind: kind, Data: data})
}

// MakeURL returns the (optionally signed) serving URL for a payload.
func (h *QRPayloadHandler) MakeURL(w http.ResponseWriter, r *http.Request) {
	var req models.RenderRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.SendErrorResponse(w, err)
		return
	}

	url, err := h.renderService.MakeURL(&req)
	if err != nil {
		utils.SendErrorResponse(w, err)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, models.URLResponse{URL: url})
}

// MakeEmbedded returns inline SVG or a data-URI img tag for a payload.
func (h *QRPayloadHandler) MakeEmbedded(w http.ResponseWriter, r *http.Request) {
	var req models.RenderRequest
	if err := utils.DecodeJSONBody(r, &req); err != nil {
		utils.SendErrorResponse(w, err)
		return
	}

	html, err := h.renderService.MakeEmbedded(r.Context(), &req)
	if err != nil {
		utils.SendErrorResponse(w, err)
		return
	}

	utils.SendJSONResponse(w, http.StatusOK, models.EmbedResponse{HTML: html})
}
