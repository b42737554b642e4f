package worker

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ds124wfegd/event-catalog/internal/entity"
	"github.com/sirupsen/logrus"
)

// ImageRefLister reports every image filename still referenced by a
// database row.
type ImageRefLister interface {
	ListImageRefs(ctx context.Context) ([]entity.ImageRef, error)
}

// Files younger than this are left alone: their row may not be
// committed yet when the sweep runs.
const orphanGracePeriod = time.Hour

// UploadsCleanupWorker periodically removes files from the uploads
// directory that no track or event references anymore. Only relevant
// for the file image backend.
type UploadsCleanupWorker struct {
	refs     ImageRefLister
	dir      string
	interval time.Duration
}

func NewUploadsCleanupWorker(refs ImageRefLister, dir string, interval time.Duration) *UploadsCleanupWorker {
	return &UploadsCleanupWorker{
		refs:     refs,
		dir:      dir,
		interval: interval,
	}
}

func (w *UploadsCleanupWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.Info("Uploads cleanup worker started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Uploads cleanup worker stopped")
			return
		case <-ticker.C:
			w.cleanupOrphanedUploads(ctx)
		}
	}
}

func (w *UploadsCleanupWorker) cleanupOrphanedUploads(ctx context.Context) {
	logrus.Info("Starting orphaned uploads cleanup")

	refs, err := w.refs.ListImageRefs(ctx)
	if err != nil {
		logrus.Errorf("Failed to list referenced images: %v", err)
		return
	}

	live := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		live[ref.String()] = struct{}{}
	}

	entries, err := os.ReadDir(w.dir)
	if err != nil {
		logrus.Errorf("Failed to read uploads directory: %v", err)
		return
	}

	removed := 0
	failed := 0

	for _, e := range entries {
		select {
		case <-ctx.Done():
			logrus.Info("Cleanup interrupted by context cancellation")
			return
		default:
		}

		if e.IsDir() {
			continue
		}

		name := e.Name()
		if w.isLive(name, live) {
			continue
		}

		info, err := e.Info()
		if err != nil {
			continue
		}
		if time.Since(info.ModTime()) < orphanGracePeriod {
			continue
		}

		if err := os.Remove(filepath.Join(w.dir, name)); err != nil {
			logrus.Errorf("Failed to remove orphaned upload %s: %v", name, err)
			failed++
			continue
		}

		logrus.Debugf("Removed orphaned upload %s", name)
		removed++
	}

	logrus.Infof("Orphaned uploads cleanup completed: %d removed, %d failed", removed, failed)
}

// isLive reports whether a file is still referenced, either directly
// or as the thumbnail companion of a referenced file.
func (w *UploadsCleanupWorker) isLive(name string, live map[string]struct{}) bool {
	if _, ok := live[name]; ok {
		return true
	}

	// Thumbnails are named <original>_thumb.jpg next to the original.
	base, found := strings.CutSuffix(name, "_thumb.jpg")
	if !found {
		return false
	}
	_, ok := live[base]
	return ok
}
