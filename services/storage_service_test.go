package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T, maxBytes int64) (*StorageService, string) {
	t.Helper()
	root := t.TempDir()
	svc := NewStorageServiceWith(NewLocalBlobStore(root, "uploads/"), maxBytes)
	svc.now = func() time.Time { return time.Unix(1700000000, 0) }
	svc.newID = func() string { return "abc" }
	return svc, root
}

func TestUploadMediaWritesFile(t *testing.T) {
	svc, root := newTestStorage(t, 1024)

	url, err := svc.UploadMedia(context.Background(), UploadInput{
		Kind: MediaImage, FileName: "Profil Fotoğrafım.PNG", ContentType: "image/png",
		Size: 5, Body: strings.NewReader("hello"),
	})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/testimonials/images/1700000000_abc_Profil_Foto_raf_m.PNG", url)

	data, err := os.ReadFile(filepath.Join(root, "testimonials", "images", "1700000000_abc_Profil_Foto_raf_m.PNG"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestUploadMediaRejectsMismatchedContentType(t *testing.T) {
	svc, _ := newTestStorage(t, 1024)

	_, err := svc.UploadMedia(context.Background(), UploadInput{
		Kind: MediaVideo, FileName: "a.png", ContentType: "image/png", Size: 1, Body: strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, ErrUploadContentType)

	_, err = svc.UploadMedia(context.Background(), UploadInput{
		Kind: "audio", FileName: "a.mp3", ContentType: "audio/mpeg", Size: 1, Body: strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, ErrUploadBadKind)
}

func TestUploadMediaEnforcesSizeLimit(t *testing.T) {
	svc, root := newTestStorage(t, 4)

	_, err := svc.UploadMedia(context.Background(), UploadInput{
		Kind: MediaImage, FileName: "a.png", ContentType: "image/png", Size: 10, Body: strings.NewReader("0123456789"),
	})
	assert.ErrorIs(t, err, ErrUploadTooLarge)

	// bildirilen boyut yanlış olsa da okuma sınırda kesilir
	_, err = svc.UploadMedia(context.Background(), UploadInput{
		Kind: MediaImage, FileName: "b.png", ContentType: "image/png", Size: 2, Body: strings.NewReader("0123456789"),
	})
	assert.ErrorIs(t, err, ErrUploadTooLarge)
	_, statErr := os.Stat(filepath.Join(root, "testimonials", "images", "1700000000_abc_b.png"))
	assert.True(t, os.IsNotExist(statErr))

	url, err := svc.UploadMedia(context.Background(), UploadInput{
		Kind: MediaImage, FileName: "c.png", ContentType: "image/png", Size: 4, Body: strings.NewReader("0123"),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, "_c.png"))
}

func TestLocalBlobStoreDoesNotOverwrite(t *testing.T) {
	store := NewLocalBlobStore(t.TempDir(), "/uploads")
	ctx := context.Background()

	url, err := store.Upload(ctx, strings.NewReader("v1"), "testimonials/images/x.png", false)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/testimonials/images/x.png", url)

	_, err = store.Upload(ctx, strings.NewReader("v2"), "testimonials/images/x.png", false)
	assert.ErrorIs(t, err, ErrBlobExists)

	_, err = store.Upload(ctx, strings.NewReader("v3"), "testimonials/images/x.png", true)
	require.NoError(t, err)

	_, err = store.Upload(ctx, strings.NewReader("x"), "../dışarı.png", false)
	assert.ErrorIs(t, err, ErrBlobInvalidPath)
}

func TestParseMediaKind(t *testing.T) {
	k, err := ParseMediaKind(" Video ")
	require.NoError(t, err)
	assert.Equal(t, MediaVideo, k)

	_, err = ParseMediaKind("pdf")
	assert.ErrorIs(t, err, ErrUploadBadKind)
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "passwd", SanitizeFileName("../../etc/passwd"))
	assert.Equal(t, "file", SanitizeFileName("..."))
	assert.Equal(t, "rapor_2024.pdf", SanitizeFileName(`C:\Users\me\rapor 2024.pdf`))
}

func TestLocalBlobStoreServesFromRoot(t *testing.T) {
	root := t.TempDir()
	store := NewLocalBlobStore(root, "media/")
	assert.Equal(t, root, store.Root())
	assert.Equal(t, "/media", store.PublicPath())

	svc := NewStorageServiceWith(store, 3<<20)
	assert.EqualValues(t, 3<<20, svc.MaxBytes())
}
