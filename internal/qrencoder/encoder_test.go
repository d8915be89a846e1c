package qrencoder

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"qr-code-backend/internal/options"
)

func TestForFormat(t *testing.T) {
	if got := ForFormat("png").MimeType(); got != "image/png" {
		t.Errorf("png MimeType = %q", got)
	}
	if got := ForFormat("svg").MimeType(); got != "image/svg+xml" {
		t.Errorf("svg MimeType = %q", got)
	}
	if got := ForFormat("jpeg").MimeType(); got != "image/svg+xml" {
		t.Errorf("unknown format must fall back to SVG, got %q", got)
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := ForFormat("png").Render("hello world", options.Default())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		t.Errorf("output is not a PNG: % x", data[:8])
	}
}

func TestRenderSVG(t *testing.T) {
	opts := options.Default()
	opts.Size = 10
	opts.Border = 2
	data, err := ForFormat("svg").Render("hello world", opts)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)
	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" `) || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("malformed SVG: %.80s", svg)
	}
	for _, want := range []string{`viewBox="0 0 `, `<rect `, `<path d="M`, `fill="#000"`, `fill="#fff"`} {
		if !strings.Contains(svg, want) {
			t.Errorf("missing %q in SVG", want)
		}
	}
}

func TestRenderSVGColors(t *testing.T) {
	opts := options.Default()
	opts.DarkColor = "#1a2b3c"
	opts.LightColor = "red"
	data, err := ForFormat("svg").Render("hello", opts)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)
	if !strings.Contains(svg, `fill="#1a2b3c"`) || !strings.Contains(svg, `fill="red"`) {
		t.Errorf("colors not applied: %.120s", svg)
	}
}

func TestRenderForcedVersion(t *testing.T) {
	opts := options.Default()
	opts.Version = 5
	if _, err := ForFormat("svg").Render("hello", opts); err != nil {
		t.Errorf("forced version render failed: %v", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"", color.Black},
		{"#000", color.RGBA{0, 0, 0, 0xff}},
		{"#ff0080", color.RGBA{0xff, 0x00, 0x80, 0xff}},
		{"red", color.RGBA{0xff, 0, 0, 0xff}},
		{"#xyz", color.Black},
		{"bogus", color.Black},
	}
	for _, tt := range tests {
		if got := parseColor(tt.in, color.Black); got != tt.want {
			t.Errorf("parseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestModuleScale(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{18, 18},
		{2.4, 2},
		{2.6, 3},
		{0.2, 1},
	}
	for _, tt := range tests {
		if got := moduleScale(tt.in); got != tt.want {
			t.Errorf("moduleScale(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
