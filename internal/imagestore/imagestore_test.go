package imagestore

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ds124wfegd/event-catalog/config"
	"github.com/ds124wfegd/event-catalog/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectsBackend(t *testing.T) {
	tests := []struct {
		name    string
		backend string
		wantErr bool
	}{
		{name: "inline", backend: "inline"},
		{name: "empty defaults to inline", backend: ""},
		{name: "file", backend: "file"},
		{name: "binary", backend: "binary"},
		{name: "unknown backend", backend: "s3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := New(&config.ImagesConfig{Backend: tt.backend, Dir: t.TempDir()})

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, store)
		})
	}
}

func TestDecodePayload(t *testing.T) {
	raw := []byte("fake image bytes")
	plain := base64.StdEncoding.EncodeToString(raw)

	tests := []struct {
		name     string
		encoded  string
		wantData []byte
		wantMime string
		wantOK   bool
	}{
		{
			name:     "bare base64",
			encoded:  plain,
			wantData: raw,
			wantOK:   true,
		},
		{
			name:     "data URI with mime",
			encoded:  "data:image/png;base64," + plain,
			wantData: raw,
			wantMime: "image/png",
			wantOK:   true,
		},
		{
			name:    "data URI without base64 marker",
			encoded: "data:image/png," + plain,
			wantOK:  false,
		},
		{
			name:    "not base64 at all",
			encoded: "definitely not base64!!!",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, mime, ok := decodePayload(tt.encoded)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantData, data)
				assert.Equal(t, tt.wantMime, mime)
			}
		})
	}
}

func TestInlineStore(t *testing.T) {
	store := &inlineStore{}

	ref, err := store.Save("data:image/png;base64,AAAA")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", store.Resolve(ref))

	ref, err = store.Save("")
	require.NoError(t, err)
	assert.True(t, ref.IsZero())
	assert.Equal(t, "", store.Resolve(ref))
}

func TestFileStoreSaveAndResolve(t *testing.T) {
	dir := t.TempDir()
	store := &fileStore{dir: dir, baseURL: "http://localhost:8080"}

	raw := []byte("fake image bytes")
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	ref, err := store.Save(encoded)
	require.NoError(t, err)
	require.False(t, ref.IsZero())
	assert.True(t, strings.HasSuffix(ref.String(), ".png"))

	onDisk, err := os.ReadFile(filepath.Join(dir, ref.String()))
	require.NoError(t, err)
	assert.Equal(t, raw, onDisk)

	assert.Equal(t, "http://localhost:8080/uploads/"+ref.String(), store.Resolve(ref))
}

func TestFileStoreMalformedPayload(t *testing.T) {
	store := &fileStore{dir: t.TempDir()}

	ref, err := store.Save("not base64!!!")
	require.NoError(t, err)
	assert.True(t, ref.IsZero())
}

func TestFileStoreResolveMissingFile(t *testing.T) {
	store := &fileStore{dir: t.TempDir(), baseURL: "http://localhost:8080"}

	// Reference to a file that was removed from disk
	assert.Equal(t, "", store.Resolve(entity.ImageRef("123_gone.png")))
}

func TestBinaryStore(t *testing.T) {
	store := &binaryStore{}

	// A minimal PNG header so content sniffing yields image/png
	raw := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0}
	encoded := base64.StdEncoding.EncodeToString(raw)

	ref, err := store.Save(encoded)
	require.NoError(t, err)
	assert.Equal(t, entity.ImageRef(raw), ref)

	resolved := store.Resolve(ref)
	assert.Equal(t, "data:image/png;base64,"+encoded, resolved)
}

func TestBinaryStoreMalformedPayload(t *testing.T) {
	store := &binaryStore{}

	ref, err := store.Save("###")
	require.NoError(t, err)
	assert.True(t, ref.IsZero())
}
