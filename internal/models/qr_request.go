// internal/models/qr_request.go
package models

import "qr-code-backend/internal/payload"

// PayloadRequest carries the structured data for one payload kind. The kind
// comes from the URL path; only the matching field is consulted.
type PayloadRequest struct {
	Text        string              `json:"text,omitempty"`
	Email       string              `json:"email,omitempty"`
	PhoneNumber string              `json:"phone_number,omitempty"`
	Latitude    *float64            `json:"latitude,omitempty"`
	Longitude   *float64            `json:"longitude,omitempty"`
	Altitude    *float64            `json:"altitude,omitempty"`
	VideoID     string              `json:"video_id,omitempty"`
	PackageID   string              `json:"package_id,omitempty"`
	MeCard      *payload.MeCard     `json:"mecard,omitempty"`
	VCard       *payload.VCard      `json:"vcard,omitempty"`
	Wifi        *payload.WifiConfig `json:"wifi,omitempty"`
	Event       *payload.Event      `json:"event,omitempty"`
	Epc         *payload.EpcData    `json:"epc,omitempty"`
}

// RenderRequest asks for a serving URL or embedded markup for an
// already-built payload. Exactly one of Data, IntData or ByteData must be
// set; ByteData arrives base64-encoded in JSON.
type RenderRequest struct {
	Data     string         `json:"data,omitempty"`
	IntData  *int64         `json:"int,omitempty"`
	ByteData []byte         `json:"bytes,omitempty"`
	Kind     string         `json:"kind,omitempty"`
	Options  map[string]any `json:"options,omitempty"`

	CacheEnabled        *bool `json:"cache_enabled,omitempty"`
	URLSignatureEnabled *bool `json:"url_signature_enabled,omitempty"`

	UseDataURIForSVG bool    `json:"use_data_uri_for_svg,omitempty"`
	AltText          *string `json:"alt_text,omitempty"`
	ClassNames       string  `json:"class_names,omitempty"`
}
