package imagestore

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"github.com/ds124wfegd/event-catalog/internal/entity"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// fileStore writes decoded payloads into a single uploads directory
// under a collision-free name and keeps only the filename as the stored
// reference. Resolution maps the filename to its retrieval URL.
type fileStore struct {
	dir       string
	baseURL   string
	thumbSize int
}

func (s *fileStore) Save(encoded string) (entity.ImageRef, error) {
	if encoded == "" {
		return nil, nil
	}

	data, mime, ok := decodePayload(encoded)
	if !ok {
		logrus.Warn("Discarding malformed image payload")
		return nil, nil
	}

	name := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.New().String(), extensionFor(mime))

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write image file: %w", err)
	}

	s.writeThumbnail(name, data)

	return entity.ImageRef(name), nil
}

func (s *fileStore) Resolve(ref entity.ImageRef) string {
	if ref.IsZero() {
		return ""
	}

	if _, err := os.Stat(filepath.Join(s.dir, ref.String())); err != nil {
		return ""
	}
	return s.baseURL + "/uploads/" + ref.String()
}

// writeThumbnail renders a small preview next to the original. Payloads
// that do not decode as an image simply get no thumbnail.
func (s *fileStore) writeThumbnail(name string, data []byte) {
	if s.thumbSize <= 0 {
		return
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		logrus.Debugf("No thumbnail for %s: %v", name, err)
		return
	}

	thumb := imaging.Thumbnail(img, s.thumbSize, s.thumbSize, imaging.Lanczos)
	thumbPath := filepath.Join(s.dir, name+"_thumb.jpg")
	if err := imaging.Save(thumb, thumbPath); err != nil {
		logrus.Warnf("Failed to save thumbnail for %s: %v", name, err)
	}
}
