// internal/qrencoder/encoder.go

// Package qrencoder renders payload text into QR images. It wraps
// github.com/skip2/go-qrcode behind a small interface so the serving layer
// depends on a capability, not a concrete writer.
package qrencoder

import (
	"errors"
	"image/color"
	"math"

	qrgen "github.com/skip2/go-qrcode"

	"qr-code-backend/internal/options"
)

// ErrEncode is wrapped around failures of the underlying QR library.
var ErrEncode = errors.New("failed to encode QR code")

// Encoder renders payload text with the given options into image bytes.
type Encoder interface {
	Render(payload string, opts *options.Options) ([]byte, error)
	MimeType() string
}

// ForFormat selects the writer for the given image format. Unknown formats
// get the SVG writer, matching the options-level fallback.
func ForFormat(imageFormat string) Encoder {
	if imageFormat == "png" {
		return &pngEncoder{}
	}
	return &svgEncoder{}
}

func recoveryLevel(errorCorrection string) qrgen.RecoveryLevel {
	switch errorCorrection {
	case "L":
		return qrgen.Low
	case "Q":
		return qrgen.High
	case "H":
		return qrgen.Highest
	default:
		return qrgen.Medium
	}
}

// buildQR constructs the QR matrix for the payload. Version 0 lets the
// library fit the smallest version; a forced version is passed through.
// Micro QR and explicit ECI designators are not supported by the underlying
// library and are rendered as regular QR codes.
func buildQR(payload string, opts *options.Options) (*qrgen.QRCode, error) {
	var qr *qrgen.QRCode
	var err error
	if opts.Version > 0 {
		qr, err = qrgen.NewWithForcedVersion(payload, opts.Version, recoveryLevel(opts.ErrorCorrection))
	} else {
		qr, err = qrgen.New(payload, recoveryLevel(opts.ErrorCorrection))
	}
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	qr.ForegroundColor = parseColor(opts.DarkColor, color.Black)
	qr.BackgroundColor = parseColor(opts.LightColor, color.White)
	if opts.Border == 0 {
		qr.DisableBorder = true
	}
	return qr, nil
}

var colorNames = map[string]color.RGBA{
	"black":   {0x00, 0x00, 0x00, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"red":     {0xff, 0x00, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00, 0xff},
	"blue":    {0x00, 0x00, 0xff, 0xff},
	"yellow":  {0xff, 0xff, 0x00, 0xff},
	"cyan":    {0x00, 0xff, 0xff, 0xff},
	"magenta": {0xff, 0x00, 0xff, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"orange":  {0xff, 0xa5, 0x00, 0xff},
	"purple":  {0x80, 0x00, 0x80, 0xff},
	"brown":   {0xa5, 0x2a, 0x2a, 0xff},
}

// parseColor resolves a normalized option color (hex or name) to a concrete
// color, falling back to the zone default for unset values.
func parseColor(value string, fallback color.Color) color.Color {
	if value == "" {
		return fallback
	}
	if c, ok := colorNames[value]; ok {
		return c
	}
	if value[0] != '#' {
		return fallback
	}
	hex := value[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return fallback
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexDigit(hex[2*i])
		lo, ok2 := hexDigit(hex[2*i+1])
		if !ok1 || !ok2 {
			return fallback
		}
		rgb[i] = hi<<4 | lo
	}
	return color.RGBA{rgb[0], rgb[1], rgb[2], 0xff}
}

func hexDigit(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// moduleScale rounds the fractional module scale for raster output.
func moduleScale(size float64) int {
	scale := int(math.Round(size))
	if scale < 1 {
		scale = 1
	}
	return scale
}
