// internal/services/encoding.go
package services

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"

	apperrors "qr-code-backend/pkg/errors"
)

// candidateEncodings is the prioritized list tried when decoding raw payload
// bytes for display. The declared encoding, when recognized, is moved to the
// front.
var candidateEncodings = []string{"utf-8", "iso-8859-1", "shift-jis"}

func decoderFor(name string) *encoding.Decoder {
	switch name {
	case "iso-8859-1", "latin-1":
		return charmap.ISO8859_1.NewDecoder()
	case "shift-jis", "shift_jis", "sjis":
		return japanese.ShiftJIS.NewDecoder()
	default:
		return nil // utf-8 and unknown charsets are validated directly
	}
}

// decodeText decodes payload bytes under the declared text encoding. It
// fails with a malformed-input error when the bytes are not valid for that
// encoding.
func decodeText(raw []byte, encodingName string) (string, error) {
	if dec := decoderFor(encodingName); dec != nil {
		text, err := dec.String(string(raw))
		if err != nil {
			return "", apperrors.NewMalformedInputError("payload bytes are not valid " + encodingName)
		}
		return text, nil
	}
	if !utf8.Valid(raw) {
		return "", apperrors.NewMalformedInputError("payload bytes are not valid " + encodingName)
	}
	return string(raw), nil
}

// decodeTextBestEffort tries the candidate encodings in priority order and
// returns the first successful decoding, or an empty string when none fit.
// Used for alt text only, where a wrong-but-readable guess beats a failure.
func decodeTextBestEffort(raw []byte, declared string) string {
	tried := make([]string, 0, len(candidateEncodings)+1)
	if declared != "" {
		tried = append(tried, declared)
	}
	for _, name := range candidateEncodings {
		if name != declared {
			tried = append(tried, name)
		}
	}
	for _, name := range tried {
		if text, err := decodeText(raw, name); err == nil {
			return text
		}
	}
	return ""
}
