package imagestore

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/ds124wfegd/event-catalog/config"
	"github.com/ds124wfegd/event-catalog/internal/entity"
)

const (
	BackendInline = "inline"
	BackendFile   = "file"
	BackendBinary = "binary"
)

// Store persists image payloads and maps stored references back to a
// displayable form. Payloads arrive base64-encoded, optionally with a
// data-URI prefix. A malformed payload produces an empty reference, not
// an error: an unset image is a normal state for every caller.
type Store interface {
	Save(encoded string) (entity.ImageRef, error)
	Resolve(ref entity.ImageRef) string
}

func New(cfg *config.ImagesConfig) (Store, error) {
	switch cfg.Backend {
	case BackendInline, "":
		return &inlineStore{}, nil
	case BackendFile:
		return &fileStore{
			dir:       cfg.Dir,
			baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
			thumbSize: cfg.ThumbnailSize,
		}, nil
	case BackendBinary:
		return &binaryStore{}, nil
	default:
		return nil, fmt.Errorf("unknown image backend: %s", cfg.Backend)
	}
}

// decodePayload strips an optional data-URI prefix and decodes the
// base64 body. ok is false when the payload is not valid base64.
func decodePayload(encoded string) (data []byte, mime string, ok bool) {
	body := encoded
	if strings.HasPrefix(encoded, "data:") {
		idx := strings.Index(encoded, ";base64,")
		if idx < 0 {
			return nil, "", false
		}
		mime = encoded[len("data:"):idx]
		body = encoded[idx+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, "", false
	}
	return data, mime, true
}

func extensionFor(mime string) string {
	switch mime {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	default:
		return ".img"
	}
}
