// internal/models/response.go
package models

type PayloadResponse struct {
	Kind string `json:"kind"`
	Data string `json:"data"`
}

type URLResponse struct {
	URL string `json:"url"`
}

type EmbedResponse struct {
	HTML string `json:"html"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
