package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"wallof.love/configs"
	"wallof.love/configs/configslog"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageServiceError özel servis hataları
type StorageServiceError string

func (e StorageServiceError) Error() string { return string(e) }

const (
	ErrUploadFailed       StorageServiceError = "dosya yüklenemedi"
	ErrUploadTooLarge     StorageServiceError = "dosya boyutu sınırı aşıldı"
	ErrUploadBadKind      StorageServiceError = "geçersiz dosya türü"
	ErrUploadContentType  StorageServiceError = "dosya içeriği seçilen türle uyuşmuyor"
	ErrUploadVideoBlocked StorageServiceError = "bu form video kabul etmiyor"
	ErrBlobExists         StorageServiceError = "aynı yolda dosya zaten var"
	ErrBlobInvalidPath    StorageServiceError = "geçersiz dosya yolu"
)

// MediaKind yüklenen medyanın türüdür.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// ParseMediaKind "image" veya "video" kabul eder.
func ParseMediaKind(s string) (MediaKind, error) {
	switch MediaKind(strings.ToLower(strings.TrimSpace(s))) {
	case MediaImage:
		return MediaImage, nil
	case MediaVideo:
		return MediaVideo, nil
	}
	return "", ErrUploadBadKind
}

// IBlobStore dosya depolama soyutlamasıdır.
type IBlobStore interface {
	// Upload içeriği verilen yola yazar ve herkese açık adresini döndürür.
	// upsert false ise mevcut dosyanın üzerine yazılmaz.
	Upload(ctx context.Context, r io.Reader, objectPath string, upsert bool) (string, error)
}

// LocalBlobStore dosyaları yerel diske yazar; dosyalar publicPath altında statik sunulur.
type LocalBlobStore struct {
	root       string
	publicPath string
}

func NewLocalBlobStore(root, publicPath string) *LocalBlobStore {
	return &LocalBlobStore{root: root, publicPath: "/" + strings.Trim(publicPath, "/")}
}

// NewLocalBlobStoreFromEnv UPLOAD_DIR ve UPLOAD_PUBLIC_PATH ile yapılandırılır.
func NewLocalBlobStoreFromEnv() *LocalBlobStore {
	return NewLocalBlobStore(configs.GetEnv("UPLOAD_DIR", "./uploads"), configs.GetEnv("UPLOAD_PUBLIC_PATH", "/uploads"))
}

func (b *LocalBlobStore) Root() string { return b.root }

func (b *LocalBlobStore) PublicPath() string { return b.publicPath }

func (b *LocalBlobStore) Upload(ctx context.Context, r io.Reader, objectPath string, upsert bool) (string, error) {
	clean := path.Clean("/" + objectPath)
	if clean == "/" || strings.Contains(objectPath, "..") {
		return "", ErrBlobInvalidPath
	}
	target := filepath.Join(b.root, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !upsert {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(target, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", ErrBlobExists
		}
		return "", err
	}
	if _, err := io.Copy(f, contextReader{ctx: ctx, r: r}); err != nil {
		f.Close()
		os.Remove(target)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(target)
		return "", err
	}
	return b.publicPath + clean, nil
}

// contextReader iptal edilen isteklerde kopyalamayı durdurur.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

var _ IBlobStore = (*LocalBlobStore)(nil)

// UploadInput public formdan gelen tek dosya.
type UploadInput struct {
	Kind        MediaKind
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// IStorageService tanıklık medyası yükleme için arayüz.
type IStorageService interface {
	UploadMedia(ctx context.Context, in UploadInput) (string, error)
	MaxBytes() int64
}

type StorageService struct {
	store    IBlobStore
	maxBytes int64
	now      func() time.Time
	newID    func() string
}

func NewStorageService() IStorageService {
	maxMB := configs.GetEnvInt("UPLOAD_MAX_MB", 50)
	return NewStorageServiceWith(NewLocalBlobStoreFromEnv(), int64(maxMB)<<20)
}

func NewStorageServiceWith(store IBlobStore, maxBytes int64) *StorageService {
	return &StorageService{store: store, maxBytes: maxBytes, now: time.Now, newID: uuid.NewString}
}

func (s *StorageService) MaxBytes() int64 { return s.maxBytes }

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFileName dosya adını yol ve URL için güvenli hale getirir.
func SanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = unsafeNameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	if len(name) > 100 {
		name = name[len(name)-100:]
	}
	return name
}

// MediaObjectPath testimonials/{image|video}s/{unix}_{uuid}_{ad} yolunu üretir.
func MediaObjectPath(kind MediaKind, at time.Time, id, fileName string) string {
	return fmt.Sprintf("testimonials/%ss/%d_%s_%s", kind, at.Unix(), id, SanitizeFileName(fileName))
}

// UploadMedia türü ve boyutu doğrular, dosyayı yazar ve herkese açık adresini döndürür.
func (s *StorageService) UploadMedia(ctx context.Context, in UploadInput) (string, error) {
	if in.Kind != MediaImage && in.Kind != MediaVideo {
		return "", ErrUploadBadKind
	}
	if !strings.HasPrefix(strings.ToLower(in.ContentType), string(in.Kind)+"/") {
		return "", ErrUploadContentType
	}
	if s.maxBytes > 0 && in.Size > s.maxBytes {
		return "", ErrUploadTooLarge
	}

	body := in.Body
	if s.maxBytes > 0 {
		body = &limitedReader{r: in.Body, remaining: s.maxBytes}
	}
	objectPath := MediaObjectPath(in.Kind, s.now(), s.newID(), in.FileName)
	url, err := s.store.Upload(ctx, body, objectPath, false)
	if err != nil {
		if errors.Is(err, ErrUploadTooLarge) {
			return "", ErrUploadTooLarge
		}
		configslog.Log.Error("Medya yüklenemedi", zap.String("path", objectPath), zap.Error(err))
		return "", ErrUploadFailed
	}
	configslog.Log.Info("Medya yüklendi", zap.String("path", objectPath), zap.String("kind", string(in.Kind)))
	return url, nil
}

// limitedReader sınır aşılınca ErrUploadTooLarge döndürür (io.LimitReader sessizce keser).
type limitedReader struct {
	r         io.Reader
	remaining int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.remaining < 0 {
		return 0, ErrUploadTooLarge
	}
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		return n, ErrUploadTooLarge
	}
	return n, err
}

var _ IStorageService = (*StorageService)(nil)
