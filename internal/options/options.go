// internal/options/options.go
package options

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	apperrors "qr-code-backend/pkg/errors"
)

// Rendering defaults. Any recognized option with an out-of-domain value is
// silently coerced to its default; only an unknown option name is an error.
const (
	DefaultModuleSize      = 18 // "medium"
	DefaultBorderSize      = 4
	DefaultImageFormat     = "svg"
	DefaultErrorCorrection = "M"
	DefaultEncoding        = "utf-8"
	DefaultBoostError      = true
	DefaultDarkColor       = "#000"
	DefaultLightColor      = "#fff"
)

// sizeAliases maps the named sizes to module scales. Both the full names and
// the original single-letter aliases are accepted, case-insensitively.
var sizeAliases = map[string]float64{
	"t": 6, "tiny": 6,
	"s": 12, "small": 12,
	"m": 18, "medium": 18,
	"l": 30, "large": 30,
	"h": 48, "huge": 48,
}

// PNGSupported reports whether a PNG-capable writer is available. The PNG
// writer is always compiled in; the fallback to SVG stays in place so that a
// build without it degrades instead of failing.
var PNGSupported = true

// Options is an immutable, validated set of QR rendering parameters.
// Construct it with Parse or Default and do not mutate it afterwards.
type Options struct {
	Size             float64
	Border           int
	Version          int    // 1..40, 0 means automatic fit
	MicroVersion     string // "M1".."M4" when a micro version tag was given
	ImageFormat      string // "svg" or "png"
	ErrorCorrection  string // "L", "M", "Q" or "H"
	Micro            bool
	ECI              bool
	BoostError       bool
	Encoding         string
	DarkColor        string
	LightColor       string
	FinderDarkColor  string
	FinderLightColor string
	DataDarkColor    string
	DataLightColor   string
}

// Default returns the options used when no parameters are given.
func Default() *Options {
	return &Options{
		Size:            DefaultModuleSize,
		Border:          DefaultBorderSize,
		ImageFormat:     DefaultImageFormat,
		ErrorCorrection: DefaultErrorCorrection,
		BoostError:      DefaultBoostError,
		Encoding:        DefaultEncoding,
		DarkColor:       DefaultDarkColor,
		LightColor:      DefaultLightColor,
	}
}

// Parse builds Options from a raw field mapping, as received from a URL
// query or a JSON body. It fails only when a field name is not recognized.
func Parse(raw map[string]any) (*Options, error) {
	o := Default()
	// micro first, so that a version value can override it.
	if v, ok := raw["micro"]; ok {
		o.Micro = coerceBool(stringify(v), false)
	}
	for key, value := range raw {
		s := stringify(value)
		switch key {
		case "size":
			o.Size = coerceSize(s)
		case "border":
			o.Border = coerceBorder(s)
		case "version":
			o.applyVersion(s)
		case "image_format":
			o.ImageFormat = coerceImageFormat(s)
		case "error_correction":
			o.ErrorCorrection = coerceErrorCorrection(s)
		case "micro":
			// handled above
		case "eci":
			o.ECI = coerceBool(s, false)
		case "boost_error":
			o.BoostError = coerceBool(s, DefaultBoostError)
		case "encoding":
			o.Encoding = coerceEncoding(s)
		case "dark_color":
			o.DarkColor = coerceColor(s, DefaultDarkColor)
		case "light_color":
			o.LightColor = coerceColor(s, DefaultLightColor)
		case "finder_dark_color":
			o.FinderDarkColor = coerceColor(s, "")
		case "finder_light_color":
			o.FinderLightColor = coerceColor(s, "")
		case "data_dark_color":
			o.DataDarkColor = coerceColor(s, "")
		case "data_light_color":
			o.DataLightColor = coerceColor(s, "")
		default:
			return nil, apperrors.NewInvalidOptionError(key)
		}
	}
	return o, nil
}

// applyVersion implements the version coercion: integers 1..40 pass through,
// micro tags M1..M4 force micro mode, anything else falls back to automatic
// fit and clears the micro flag.
func (o *Options) applyVersion(s string) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 40 {
		o.Version = n
		o.MicroVersion = ""
		return
	}
	upper := strings.ToUpper(s)
	switch upper {
	case "M1", "M2", "M3", "M4":
		o.Version = 0
		o.MicroVersion = upper
		o.Micro = true
	default:
		o.Version = 0
		o.MicroVersion = ""
		o.Micro = false
	}
}

// VersionString renders the version for canonical strings and URLs: the
// integer version, the micro tag, or empty for automatic fit.
func (o *Options) VersionString() string {
	if o.MicroVersion != "" {
		return o.MicroVersion
	}
	if o.Version > 0 {
		return strconv.Itoa(o.Version)
	}
	return ""
}

// SizeString renders the module scale without a trailing fraction for whole
// numbers, so canonical strings stay stable.
func (o *Options) SizeString() string {
	return strconv.FormatFloat(o.Size, 'f', -1, 64)
}

// ProtectionString is the ordered canonical parameter string bound into
// signed URL tokens.
func (o *Options) ProtectionString() string {
	return strings.Join([]string{
		o.SizeString(),
		strconv.Itoa(o.Border),
		o.VersionString(),
		o.ImageFormat,
		o.ErrorCorrection,
	}, ".")
}

// QueryValues serializes only the non-default fields, keeping serving URLs
// short and avoiding exposure of the full parameter surface.
func (o *Options) QueryValues() url.Values {
	params := url.Values{}
	if o.Size != DefaultModuleSize {
		params.Set("size", o.SizeString())
	}
	if o.Border != DefaultBorderSize {
		params.Set("border", strconv.Itoa(o.Border))
	}
	if v := o.VersionString(); v != "" {
		params.Set("version", v)
	}
	if o.ImageFormat != DefaultImageFormat {
		params.Set("image_format", o.ImageFormat)
	}
	if o.ErrorCorrection != DefaultErrorCorrection {
		params.Set("error_correction", o.ErrorCorrection)
	}
	if o.Micro && o.MicroVersion == "" {
		params.Set("micro", "1")
	}
	if o.ECI {
		params.Set("eci", "1")
	}
	if !o.BoostError {
		params.Set("boost_error", "0")
	}
	if o.Encoding != DefaultEncoding {
		params.Set("encoding", o.Encoding)
	}
	for key, pair := range map[string][2]string{
		"dark_color":         {o.DarkColor, DefaultDarkColor},
		"light_color":        {o.LightColor, DefaultLightColor},
		"finder_dark_color":  {o.FinderDarkColor, ""},
		"finder_light_color": {o.FinderLightColor, ""},
		"data_dark_color":    {o.DataDarkColor, ""},
		"data_light_color":   {o.DataLightColor, ""},
	} {
		if pair[0] != pair[1] {
			params.Set(key, pair[0])
		}
	}
	return params
}

func stringify(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case bool:
		if value {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func coerceSize(s string) float64 {
	s = strings.TrimSpace(s)
	if scale, ok := sizeAliases[strings.ToLower(s)]; ok {
		return scale
	}
	if scale, err := strconv.ParseFloat(s, 64); err == nil && scale >= 1 {
		return scale
	}
	return DefaultModuleSize
}

func coerceBorder(s string) int {
	if border, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && border >= 0 {
		return border
	}
	return DefaultBorderSize
}

func coerceImageFormat(s string) string {
	format := strings.ToLower(strings.TrimSpace(s))
	if format == "png" && PNGSupported {
		return "png"
	}
	return DefaultImageFormat
}

func coerceErrorCorrection(s string) string {
	level := strings.ToUpper(strings.TrimSpace(s))
	switch level {
	case "L", "M", "Q", "H":
		return level
	}
	return DefaultErrorCorrection
}

func coerceBool(s string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	}
	return fallback
}

func coerceEncoding(s string) string {
	encoding := strings.ToLower(strings.TrimSpace(s))
	if encoding == "" || encoding == "none" {
		return DefaultEncoding
	}
	return encoding
}

// namedColors is the accepted set of color keywords.
var namedColors = map[string]bool{
	"black": true, "white": true, "red": true, "green": true, "blue": true,
	"yellow": true, "cyan": true, "magenta": true, "gray": true, "grey": true,
	"orange": true, "purple": true, "brown": true,
}

// coerceColor accepts a hex string, an r,g,b triple, or a named color.
// "none" (or empty) unsets the channel so it inherits the dark/light default
// at encode time; anything unrecognized falls back to the channel default.
func coerceColor(s, fallback string) string {
	value := strings.ToLower(strings.TrimSpace(s))
	if value == "" || value == "none" || value == "transparent" {
		return ""
	}
	if namedColors[value] {
		return value
	}
	if strings.HasPrefix(value, "#") {
		hex := value[1:]
		if (len(hex) == 3 || len(hex) == 6) && isHex(hex) {
			return value
		}
		return fallback
	}
	if rgb := strings.Split(value, ","); len(rgb) == 3 {
		var channels [3]int
		for i, part := range rgb {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || n < 0 || n > 255 {
				return fallback
			}
			channels[i] = n
		}
		return fmt.Sprintf("#%02x%02x%02x", channels[0], channels[1], channels[2])
	}
	return fallback
}

func isHex(s string) bool {
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
