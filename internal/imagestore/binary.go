package imagestore

import (
	"encoding/base64"
	"net/http"

	"github.com/ds124wfegd/event-catalog/internal/entity"
	"github.com/sirupsen/logrus"
)

// binaryStore decodes the payload once at write time and keeps the raw
// bytes in the owning row. Resolution re-encodes them into a data URI.
type binaryStore struct{}

func (s *binaryStore) Save(encoded string) (entity.ImageRef, error) {
	if encoded == "" {
		return nil, nil
	}

	data, _, ok := decodePayload(encoded)
	if !ok {
		logrus.Warn("Discarding malformed image payload")
		return nil, nil
	}
	return entity.ImageRef(data), nil
}

func (s *binaryStore) Resolve(ref entity.ImageRef) string {
	if ref.IsZero() {
		return ""
	}

	mime := http.DetectContentType(ref)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(ref)
}
