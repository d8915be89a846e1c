// internal/services/render_service.go
package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"html"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"qr-code-backend/internal/cache"
	"qr-code-backend/internal/models"
	"qr-code-backend/internal/options"
	"qr-code-backend/internal/qrencoder"
	"qr-code-backend/internal/signing"
	apperrors "qr-code-backend/pkg/errors"
)

// ServeImagePath is the route that serves rendered QR images.
const ServeImagePath = "/qr-code/images/serve-qr-code-image/"

// RenderService builds signed serving URLs, embedded markup, and serves
// verified image requests, with an optional cache short-circuit.
type RenderService interface {
	MakeURL(req *models.RenderRequest) (string, error)
	MakeEmbedded(ctx context.Context, req *models.RenderRequest) (string, error)
	ServeImage(ctx context.Context, query url.Values, user *models.User) (string, []byte, error)
}

type renderService struct {
	signer   *signing.Signer
	cache    cache.KeyValueCache // nil disables caching
	cacheTTL int
	logger   *zap.Logger
}

func NewRenderService(signer *signing.Signer, kv cache.KeyValueCache, cacheTTL int, logger *zap.Logger) RenderService {
	return &renderService{
		signer:   signer,
		cache:    kv,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// MakeURL builds the serving URL for the request's payload and options. Only
// non-default option fields are serialized; a token is appended unless
// signing was explicitly disabled.
func (s *renderService) MakeURL(req *models.RenderRequest) (string, error) {
	opts, err := s.parseRequestOptions(req)
	if err != nil {
		return "", err
	}
	key, value, err := payloadParam(req)
	if err != nil {
		return "", err
	}

	params := opts.QueryValues()
	params.Set(key, value)
	params.Set("cache_enabled", boolFlag(req.CacheEnabled == nil || *req.CacheEnabled))
	if req.URLSignatureEnabled == nil || *req.URLSignatureEnabled {
		params.Set("token", s.signer.IssueToken(opts))
	}
	return ServeImagePath + "?" + params.Encode(), nil
}

// ServeImage handles a serving request: it decodes the payload, rebuilds the
// options from the query, applies the access decision, and renders (or
// fetches from cache) the image. It returns the MIME type and the image body.
func (s *renderService) ServeImage(ctx context.Context, query url.Values, user *models.User) (string, []byte, error) {
	raw := make(map[string]any)
	for key, values := range query {
		switch key {
		case "text", "int", "bytes", "token", "cache_enabled":
			continue
		}
		if len(values) > 0 {
			raw[key] = values[0]
		}
	}
	opts, err := options.Parse(raw)
	if err != nil {
		return "", nil, err
	}

	payloadText, err := extractPayload(query, opts.Encoding)
	if err != nil {
		return "", nil, err
	}

	if err := s.signer.CheckAccess(opts, query.Get("token"), user); err != nil {
		return "", nil, err
	}

	encoder := qrencoder.ForFormat(opts.ImageFormat)
	cacheEnabled := query.Get("cache_enabled") != "0"
	cacheKey := ""
	if cacheEnabled && s.cache != nil {
		cacheKey = cache.DeriveKey(s.canonicalURL(payloadParamFromQuery(query), opts), nil)
		if body, err := s.cache.Get(ctx, cacheKey); err == nil {
			return encoder.MimeType(), body, nil
		} else if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("cache lookup failed", zap.Error(err))
		}
	}

	body, err := encoder.Render(payloadText, opts)
	if err != nil {
		return "", nil, apperrors.NewAppError(apperrors.ErrInternalServer, 500, "failed to render QR code", err.Error())
	}

	if cacheKey != "" {
		if err := s.cache.Set(ctx, cacheKey, body, s.cacheTTL); err != nil {
			s.logger.Warn("cache store failed", zap.Error(err))
		}
	}
	return encoder.MimeType(), body, nil
}

// MakeEmbedded returns an inline <svg> fragment or an <img> tag with a
// base64 data URI, consulting the cache first when enabled.
func (s *renderService) MakeEmbedded(ctx context.Context, req *models.RenderRequest) (string, error) {
	opts, err := s.parseRequestOptions(req)
	if err != nil {
		return "", err
	}
	key, value, err := payloadParam(req)
	if err != nil {
		return "", err
	}
	payloadText, err := requestPayloadText(req, opts.Encoding)
	if err != nil {
		return "", err
	}

	cacheEnabled := req.CacheEnabled == nil || *req.CacheEnabled
	cacheKey := ""
	if cacheEnabled && s.cache != nil {
		// The unsigned URL is the base of the key; the data-URI flag is not
		// part of the URL and is appended as an out-of-band flag.
		extra := map[string]string{"data_uri_for_svg": strconv.FormatBool(req.UseDataURIForSVG)}
		cacheKey = cache.DeriveKey(s.canonicalURL([2]string{key, value}, opts), extra)
		if body, err := s.cache.Get(ctx, cacheKey); err == nil {
			return string(body), nil
		} else if !errors.Is(err, cache.ErrMiss) {
			s.logger.Warn("cache lookup failed", zap.Error(err))
		}
	}

	markup, err := s.buildMarkup(payloadText, opts, req)
	if err != nil {
		return "", err
	}

	if cacheKey != "" {
		if err := s.cache.Set(ctx, cacheKey, []byte(markup), s.cacheTTL); err != nil {
			s.logger.Warn("cache store failed", zap.Error(err))
		}
	}
	return markup, nil
}

func (s *renderService) buildMarkup(payloadText string, opts *options.Options, req *models.RenderRequest) (string, error) {
	encoder := qrencoder.ForFormat(opts.ImageFormat)
	img, err := encoder.Render(payloadText, opts)
	if err != nil {
		return "", apperrors.NewAppError(apperrors.ErrInternalServer, 500, "failed to render QR code", err.Error())
	}

	alt := html.EscapeString(altText(req, payloadText, opts.Encoding))
	classAttr := ""
	if req.ClassNames != "" {
		classAttr = fmt.Sprintf(` class="%s"`, html.EscapeString(req.ClassNames))
	}

	if opts.ImageFormat == "png" {
		uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(img)
		return fmt.Sprintf(`<img src="%s" alt="%s"%s>`, uri, alt, classAttr), nil
	}
	if req.UseDataURIForSVG {
		uri := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(img)
		return fmt.Sprintf(`<img src="%s" alt="%s"%s>`, uri, alt, classAttr), nil
	}

	svg := string(img)
	if classAttr != "" {
		svg = strings.Replace(svg, "<svg ", "<svg"+classAttr+" ", 1)
	}
	return svg, nil
}

// parseRequestOptions builds the options and applies the payment overrides:
// EPC readers require fixed parameters, so error correction is pinned to M
// and error boosting is disabled for EPC payloads.
func (s *renderService) parseRequestOptions(req *models.RenderRequest) (*options.Options, error) {
	opts, err := options.Parse(req.Options)
	if err != nil {
		return nil, err
	}
	if req.Kind == "epc" {
		opts.ErrorCorrection = options.DefaultErrorCorrection
		opts.BoostError = false
	}
	return opts, nil
}

// canonicalURL is the token-less, cache-flag-less serving URL used as the
// base of cache keys, so the key is stable no matter which caller's token
// produced the request.
func (s *renderService) canonicalURL(payloadKV [2]string, opts *options.Options) string {
	params := opts.QueryValues()
	params.Set(payloadKV[0], payloadKV[1])
	return ServeImagePath + "?" + params.Encode()
}

// payloadParam maps the request's payload to its query parameter: text
// (base64url of the text), int (raw integer), or bytes (base64 of raw
// bytes), mutually exclusive.
func payloadParam(req *models.RenderRequest) (string, string, error) {
	set := 0
	if req.Data != "" {
		set++
	}
	if req.IntData != nil {
		set++
	}
	if req.ByteData != nil {
		set++
	}
	if set != 1 {
		return "", "", apperrors.NewMalformedInputError("exactly one of data, int or bytes must be provided")
	}
	switch {
	case req.IntData != nil:
		return "int", strconv.FormatInt(*req.IntData, 10), nil
	case req.ByteData != nil:
		return "bytes", base64.StdEncoding.EncodeToString(req.ByteData), nil
	default:
		return "text", base64.URLEncoding.EncodeToString([]byte(req.Data)), nil
	}
}

func payloadParamFromQuery(query url.Values) [2]string {
	for _, key := range []string{"text", "int", "bytes"} {
		if value := query.Get(key); value != "" {
			return [2]string{key, value}
		}
	}
	return [2]string{"text", ""}
}

// requestPayloadText resolves the request's payload to the text handed to
// the QR encoder. Raw bytes must decode under the declared encoding.
func requestPayloadText(req *models.RenderRequest, encodingName string) (string, error) {
	switch {
	case req.IntData != nil:
		return strconv.FormatInt(*req.IntData, 10), nil
	case req.ByteData != nil:
		return decodeText(req.ByteData, encodingName)
	default:
		return req.Data, nil
	}
}

// extractPayload decodes the payload from the serving query. Exactly one of
// the mutually exclusive payload parameters must be present.
func extractPayload(query url.Values, encodingName string) (string, error) {
	var present []string
	for _, key := range []string{"text", "int", "bytes"} {
		if query.Get(key) != "" {
			present = append(present, key)
		}
	}
	if len(present) != 1 {
		return "", apperrors.NewMalformedInputError("exactly one of text, int or bytes must be provided")
	}

	value := query.Get(present[0])
	switch present[0] {
	case "int":
		if _, err := strconv.ParseInt(value, 10, 64); err != nil {
			return "", apperrors.NewMalformedInputError("int parameter is not a valid integer")
		}
		return value, nil
	case "bytes":
		raw, err := base64.StdEncoding.DecodeString(value)
		if err != nil {
			return "", apperrors.NewMalformedInputError("bytes parameter is not valid base64")
		}
		return decodeText(raw, encodingName)
	default:
		raw, err := base64.URLEncoding.DecodeString(value)
		if err != nil {
			// Tolerate unpadded base64url from hand-built URLs.
			if raw, err = base64.RawURLEncoding.DecodeString(value); err != nil {
				return "", apperrors.NewMalformedInputError("text parameter is not valid base64url")
			}
		}
		return decodeText(raw, encodingName)
	}
}

// altText picks the embedded image's alternative text: an explicit value
// wins, raw bytes are decoded best-effort through the candidate encodings,
// and everything else defaults to the payload string.
func altText(req *models.RenderRequest, payloadText, encodingName string) string {
	if req.AltText != nil {
		return *req.AltText
	}
	if req.ByteData != nil {
		return decodeTextBestEffort(req.ByteData, encodingName)
	}
	return payloadText
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
