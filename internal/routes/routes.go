// internal/routes/routes.go
package routes

import (
	"time"

	"qr-code-backend/internal/handlers"
	"qr-code-backend/internal/middleware"
	"qr-code-backend/internal/services"

	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	Health  *handlers.HealthHandler
	QRImage *handlers.QRImageHandler
	Payload *handlers.QRPayloadHandler
}

func SetupRoutes(h *Handlers, jwtSecret string) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger())
	r.Use(middleware.Recoverer())
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.CORS())
	r.Use(middleware.Identity(jwtSecret))

	// Health check routes
	r.Get("/", h.Health.HealthCheck)
	r.Get("/health", h.Health.HealthCheck)

	// Image serving route; access control happens inside the handler, since
	// a valid signed token stands in for authentication.
	r.Get(services.ServeImagePath, h.QRImage.ServeImage)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/payloads/{kind}", h.Payload.BuildPayload)
		r.Route("/qr", func(r chi.Router) {
			r.Post("/url", h.Payload.MakeURL)
			r.Post("/embed", h.Payload.MakeEmbedded)
		})
	})

	return r
}
