// internal/services/payload_service.go
package services

import (
	"qr-code-backend/internal/models"
	"qr-code-backend/internal/payload"
	apperrors "qr-code-backend/pkg/errors"
)

// PayloadService turns structured records into the canonical payload text
// that QR scanning apps recognize.
type PayloadService interface {
	Build(kind string, req *models.PayloadRequest) (string, error)
}

type payloadService struct{}

func NewPayloadService() PayloadService {
	return &payloadService{}
}

// Build dispatches on the payload kind. Encoders never fail for missing
// optional fields; only record invariant violations (EPC) surface as errors.
func (s *payloadService) Build(kind string, req *models.PayloadRequest) (string, error) {
	switch kind {
	case "text":
		return req.Text, nil
	case "email":
		return payload.MakeEmailText(req.Email), nil
	case "tel":
		return payload.MakeTelText(req.PhoneNumber), nil
	case "sms":
		return payload.MakeSmsText(req.PhoneNumber), nil
	case "geo", "geolocation":
		if req.Latitude == nil || req.Longitude == nil {
			return "", apperrors.NewAppError(apperrors.ErrValidation, 400, "latitude and longitude are required")
		}
		return payload.MakeGeoText(*req.Latitude, *req.Longitude, req.Altitude), nil
	case "google-maps":
		if req.Latitude == nil || req.Longitude == nil {
			return "", apperrors.NewAppError(apperrors.ErrValidation, 400, "latitude and longitude are required")
		}
		return payload.MakeGoogleMapsText(*req.Latitude, *req.Longitude), nil
	case "youtube":
		return payload.MakeYoutubeText(req.VideoID), nil
	case "google-play":
		return payload.MakeGooglePlayText(req.PackageID), nil
	case "mecard", "contact":
		if req.MeCard == nil {
			return "", apperrors.NewAppError(apperrors.ErrValidation, 400, "mecard record is required")
		}
		return req.MeCard.Data(), nil
	case "vcard":
		if req.VCard == nil {
			return "", apperrors.NewAppError(apperrors.ErrValidation, 400, "vcard record is required")
		}
		return req.VCard.Data(), nil
	case "wifi":
		if req.Wifi == nil {
			return "", apperrors.NewAppError(apperrors.ErrValidation, 400, "wifi record is required")
		}
		return req.Wifi.Data(), nil
	case "event":
		if req.Event == nil {
			return "", apperrors.NewAppError(apperrors.ErrValidation, 400, "event record is required")
		}
		return req.Event.Data(), nil
	case "epc":
		if req.Epc == nil {
			return "", apperrors.NewAppError(apperrors.ErrValidation, 400, "epc record is required")
		}
		return req.Epc.Data()
	default:
		return "", apperrors.NewAppError(apperrors.ErrNotFound, 404, "unknown payload kind: "+kind)
	}
}
