package imagestore

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// PublicPrefix is the path under which stored files are served externally
const PublicPrefix = "/static/uploads"

const (
	maxOriginalSide = 2000
	jpegQuality     = 85
)

// Store persists inline-encoded images to the local uploads directory
type Store struct {
	dir string
}

// New creates a store rooted at dir, creating it when missing
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// IsInline reports whether payload looks like an inline-encoded image
// (a data URI or a bare base64 marker) rather than a file path or URL.
func IsInline(payload string) bool {
	return strings.HasPrefix(payload, "data:") || strings.HasPrefix(payload, "base64,")
}

// StoreInline decodes an inline-encoded image payload and writes it under the
// uploads directory. It returns the public path and true on success. Non-inline
// input, decode failures and write failures all return false; failures are
// logged, never surfaced, so callers treat false as "skip the image".
func (s *Store) StoreInline(payload string) (string, bool) {
	if !IsInline(payload) {
		return "", false
	}

	format := "jpg"
	encoded := payload
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ",")
		if idx < 0 {
			log.Warn().Msg("Inline image payload has no comma separator")
			return "", false
		}
		if f, ok := formatFromHeader(payload[:idx]); ok {
			format = f
		}
		encoded = payload[idx+1:]
	} else {
		encoded = strings.TrimPrefix(payload, "base64,")
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to decode inline image payload")
		return "", false
	}

	data = s.shrinkOversized(data)

	name := fmt.Sprintf("artwork_%d_%s.%s", time.Now().Unix(), shortID(), format)
	fullPath := filepath.Join(s.dir, name)
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		log.Error().Err(err).Str("path", fullPath).Msg("Failed to write image file")
		return "", false
	}

	log.Debug().Str("file", name).Int("bytes", len(data)).Msg("Stored inline image")
	return PublicPrefix + "/" + name, true
}

// NormalizePath rewrites a stored image path to its public form. Empty input
// and paths already under /static/ pass through unchanged. Idempotent.
func NormalizePath(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "/static/") {
		return raw
	}
	return PublicPrefix + "/" + path.Base(raw)
}

// formatFromHeader extracts the image format from a data URI header
// such as "data:image/png;base64".
func formatFromHeader(header string) (string, bool) {
	mime := strings.TrimPrefix(header, "data:")
	if idx := strings.Index(mime, ";"); idx >= 0 {
		mime = mime[:idx]
	}
	if !strings.HasPrefix(mime, "image/") {
		return "", false
	}
	format := strings.TrimPrefix(mime, "image/")
	if format == "" {
		return "", false
	}
	if format == "jpeg" {
		format = "jpg"
	}
	return format, true
}

// shrinkOversized downscales images larger than maxOriginalSide on either
// axis. Bytes that do not parse as an image are written as-is.
func (s *Store) shrinkOversized(data []byte) []byte {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxOriginalSide && bounds.Dy() <= maxOriginalSide {
		return data
	}

	resized := imaging.Fit(img, maxOriginalSide, maxOriginalSide, imaging.Lanczos)

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, resized)
	default:
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Failed to re-encode resized image, keeping original")
		return data
	}

	log.Debug().
		Int("width", bounds.Dx()).
		Int("height", bounds.Dy()).
		Msg("Downscaled oversized inline image")
	return buf.Bytes()
}

func shortID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
