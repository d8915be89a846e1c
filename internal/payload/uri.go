// internal/payload/uri.go
package payload

import (
	"net/url"
	"strconv"
	"strings"
)

// FormatCoordinate renders a coordinate with fixed 8-decimal precision and
// trailing zeros stripped, so the output is reproducible across platforms.
func FormatCoordinate(v float64) string {
	s := strconv.FormatFloat(v, 'f', 8, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func MakeEmailText(email string) string {
	return "mailto:" + email
}

func MakeTelText(phoneNumber string) string {
	return "tel:" + phoneNumber
}

func MakeSmsText(phoneNumber string) string {
	return "sms:" + phoneNumber
}

func MakeGeoText(latitude, longitude float64, altitude *float64) string {
	text := "geo:" + FormatCoordinate(latitude) + "," + FormatCoordinate(longitude)
	if altitude != nil {
		text += "," + FormatCoordinate(*altitude)
	}
	return text
}

func MakeGoogleMapsText(latitude, longitude float64) string {
	return "https://maps.google.com/local?q=" + FormatCoordinate(latitude) + "," + FormatCoordinate(longitude)
}

func MakeYoutubeText(videoID string) string {
	return "https://www.youtube.com/watch/?v=" + url.QueryEscape(videoID)
}

func MakeGooglePlayText(packageID string) string {
	return "https://play.google.com/store/apps/details?id=" + url.QueryEscape(packageID)
}
