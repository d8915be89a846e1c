// internal/qrencoder/svg.go
package qrencoder

import (
	"fmt"
	"strings"

	"qr-code-backend/internal/options"
)

type svgEncoder struct{}

func (e *svgEncoder) MimeType() string { return "image/svg+xml" }

// Render serializes the QR matrix as a compact SVG path. The quiet zone is
// drawn by this writer so the border option is honored exactly; dark modules
// are merged into horizontal runs to keep the path short.
func (e *svgEncoder) Render(payload string, opts *options.Options) ([]byte, error) {
	qr, err := buildQR(payload, opts)
	if err != nil {
		return nil, err
	}
	qr.DisableBorder = true
	bitmap := qr.Bitmap()

	modules := len(bitmap)
	border := opts.Border
	total := modules + 2*border
	dimension := float64(total) * opts.Size

	dark := opts.DarkColor
	if dark == "" {
		dark = options.DefaultDarkColor
	}
	light := opts.LightColor
	if light == "" {
		light = options.DefaultLightColor
	}

	var path strings.Builder
	for y, row := range bitmap {
		x := 0
		for x < len(row) {
			if !row[x] {
				x++
				continue
			}
			run := 0
			for x+run < len(row) && row[x+run] {
				run++
			}
			fmt.Fprintf(&path, "M%d %dh%dv1h-%dz", x+border, y+border, run, run)
			x += run
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %d %d">`,
		formatDimension(dimension), formatDimension(dimension), total, total)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="%s"/>`, total, total, light)
	fmt.Fprintf(&b, `<path d="%s" fill="%s"/>`, path.String(), dark)
	b.WriteString(`</svg>`)
	return []byte(b.String()), nil
}

func formatDimension(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
