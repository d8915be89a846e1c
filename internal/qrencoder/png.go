// internal/qrencoder/png.go
package qrencoder

import (
	"errors"

	"qr-code-backend/internal/options"
)

type pngEncoder struct{}

func (e *pngEncoder) MimeType() string { return "image/png" }

// Render produces PNG bytes. A negative size asks the library for a fixed
// number of pixels per module, which is exactly the module-scale semantics of
// the size option.
func (e *pngEncoder) Render(payload string, opts *options.Options) ([]byte, error) {
	qr, err := buildQR(payload, opts)
	if err != nil {
		return nil, err
	}
	data, err := qr.PNG(-moduleScale(opts.Size))
	if err != nil {
		return nil, errors.Join(ErrEncode, err)
	}
	return data, nil
}
