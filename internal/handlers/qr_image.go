// internal/handlers/qr_image.go
package handlers

import (
	"net/http"

	"qr-code-backend/internal/middleware"
	"qr-code-backend/internal/services"
	"qr-code-backend/pkg/utils"
)

// QRImageHandler serves rendered QR code images.
type QRImageHandler struct {
	renderService services.RenderService
}

func NewQRImageHandler(renderService services.RenderService) *QRImageHandler {
	return &QRImageHandler{renderService: renderService}
}

// ServeImage handles the signed-URL contract: it verifies access against the
// request's own parameters and streams the rendered image.
func (h *QRImageHandler) ServeImage(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	mimeType, body, err := h.renderService.ServeImage(r.Context(), r.URL.Query(), user)
	if err != nil {
		utils.SendErrorResponse(w, err)
		return
	}
	utils.SendImageResponse(w, mimeType, body)
}
