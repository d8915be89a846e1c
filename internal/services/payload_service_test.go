package services

import (
	"strings"
	"testing"

	"qr-code-backend/internal/models"
	"qr-code-backend/internal/payload"
	apperrors "qr-code-backend/pkg/errors"
)

func TestPayloadServiceBuild(t *testing.T) {
	svc := NewPayloadService()
	latitude, longitude, altitude := 46.519962, 6.633597, 495.0

	tests := []struct {
		kind string
		req  models.PayloadRequest
		want string
	}{
		{"text", models.PayloadRequest{Text: "hello"}, "hello"},
		{"email", models.PayloadRequest{Email: "john@example.com"}, "mailto:john@example.com"},
		{"tel", models.PayloadRequest{PhoneNumber: "+41769998877"}, "tel:+41769998877"},
		{"sms", models.PayloadRequest{PhoneNumber: "+41769998877"}, "sms:+41769998877"},
		{
			"geolocation",
			models.PayloadRequest{Latitude: &latitude, Longitude: &longitude, Altitude: &altitude},
			"geo:46.519962,6.633597,495",
		},
		{
			"geo",
			models.PayloadRequest{Latitude: &latitude, Longitude: &longitude},
			"geo:46.519962,6.633597",
		},
		{
			"google-maps",
			models.PayloadRequest{Latitude: &latitude, Longitude: &longitude},
			"https://maps.google.com/local?q=46.519962,6.633597",
		},
		{"youtube", models.PayloadRequest{VideoID: "J9go2nj6b3M"}, "https://www.youtube.com/watch/?v=J9go2nj6b3M"},
		{"google-play", models.PayloadRequest{PackageID: "org.example.app"}, "https://play.google.com/store/apps/details?id=org.example.app"},
		{
			"mecard",
			models.PayloadRequest{MeCard: &payload.MeCard{FirstName: "John", LastName: "Doe", Tel: "+41769998877"}},
			"MECARD:N:Doe,John;TEL:+41769998877;;",
		},
		{
			"contact",
			models.PayloadRequest{MeCard: &payload.MeCard{LastName: "Doe"}},
			"MECARD:N:Doe;;",
		},
		{
			"wifi",
			models.PayloadRequest{Wifi: &payload.WifiConfig{SSID: "my-wifi", Authentication: payload.AuthWPA, Password: "wifi-password"}},
			"WIFI:S:my-wifi;T:WPA;P:wifi-password;;",
		},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			got, err := svc.Build(tt.kind, &tt.req)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Build(%q) = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestPayloadServiceBuildVCardAndEvent(t *testing.T) {
	svc := NewPayloadService()
	got, err := svc.Build("vcard", &models.PayloadRequest{VCard: &payload.VCard{Name: "Doe;John"}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "BEGIN:VCARD\r\n") || !strings.HasSuffix(got, "END:VCARD\r\n") {
		t.Errorf("vcard payload malformed: %q", got)
	}

	got, err = svc.Build("event", &models.PayloadRequest{Event: &payload.Event{Summary: "Sync"}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "BEGIN:VCALENDAR\r\n") || !strings.Contains(got, "SUMMARY:Sync\r\n") {
		t.Errorf("event payload malformed: %q", got)
	}
}

func TestPayloadServiceBuildErrors(t *testing.T) {
	svc := NewPayloadService()
	tests := []struct {
		name       string
		kind       string
		req        models.PayloadRequest
		wantStatus int
	}{
		{"unknown kind", "barcode", models.PayloadRequest{}, 404},
		{"geolocation without coordinates", "geolocation", models.PayloadRequest{}, 400},
		{"mecard without record", "mecard", models.PayloadRequest{}, 400},
		{"vcard without record", "vcard", models.PayloadRequest{}, 400},
		{"wifi without record", "wifi", models.PayloadRequest{}, 400},
		{"event without record", "event", models.PayloadRequest{}, 400},
		{"epc without record", "epc", models.PayloadRequest{}, 400},
		{"epc invariant violation", "epc", models.PayloadRequest{Epc: &payload.EpcData{Name: "x"}}, 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Build(tt.kind, &tt.req)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := apperrors.GetStatusCode(err); got != tt.wantStatus {
				t.Errorf("status = %d, want %d", got, tt.wantStatus)
			}
		})
	}
}
