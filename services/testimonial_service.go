package services

import (
	"context"
	"errors"
	"time"

	"wallof.love/configs/configslog"
	"wallof.love/models"
	"wallof.love/pkg/queryparams"
	"wallof.love/repositories"

	"go.uber.org/zap"
)

// TestimonialServiceError özel servis hataları
type TestimonialServiceError string

func (e TestimonialServiceError) Error() string { return string(e) }

const (
	ErrTestimonialNotFound   TestimonialServiceError = "tanıklık bulunamadı"
	ErrTestimonialNotPending TestimonialServiceError = "yalnızca onay bekleyen tanıklıklar değerlendirilebilir"
	ErrTestimonialUpdate     TestimonialServiceError = "tanıklık durumu güncellenemedi"
	ErrWallNotFound          TestimonialServiceError = "sayfa bulunamadı"
)

// StatusFilters panel listesindeki durum sekmeleri.
var StatusFilters = []string{"all", string(models.TestimonialStatusPending), string(models.TestimonialStatusApproved), string(models.TestimonialStatusRejected)}

// Wall bir hesabın onaylı tanıklıklarını ve markasını taşır.
type Wall struct {
	OwnerID      uint
	Settings     *models.AccountSettings
	Testimonials []models.Testimonial
}

// ITestimonialService moderasyon ve duvar için arayüz.
type ITestimonialService interface {
	ListForOwner(ctx context.Context, userID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	Approve(ctx context.Context, userID, id uint) error
	Reject(ctx context.Context, userID, id uint) error
	WallForOwner(ctx context.Context, userID uint) ([]models.Testimonial, error)
	WallByKey(ctx context.Context, key string) (*Wall, error)
	WallLink(ctx context.Context, userID uint) (*models.Link, error)
}

type TestimonialService struct {
	repo        repositories.ITestimonialRepository
	linkService ILinkService
	settings    ISettingsService
	now         func() time.Time
}

func NewTestimonialService() ITestimonialService {
	return NewTestimonialServiceWith(repositories.NewTestimonialRepository(), NewLinkService(), NewSettingsService())
}

func NewTestimonialServiceWith(repo repositories.ITestimonialRepository, linkService ILinkService, settings ISettingsService) *TestimonialService {
	return &TestimonialService{repo: repo, linkService: linkService, settings: settings, now: time.Now}
}

// ListForOwner hesaba gelen tanıklıkları listeler; Status "all" veya boşsa filtre uygulanmaz.
func (s *TestimonialService) ListForOwner(ctx context.Context, userID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	params.Validate()
	items, total, err := s.repo.FindByOwnerPaginated(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(items, total, params), nil
}

func (s *TestimonialService) Approve(ctx context.Context, userID, id uint) error {
	return s.transition(ctx, userID, id, models.TestimonialStatusApproved)
}

func (s *TestimonialService) Reject(ctx context.Context, userID, id uint) error {
	return s.transition(ctx, userID, id, models.TestimonialStatusRejected)
}

// transition yalnızca pending durumundan geçişe izin verir; onay ve ret kalıcıdır.
func (s *TestimonialService) transition(ctx context.Context, userID, id uint, to models.TestimonialStatus) error {
	err := s.repo.TransitionStatus(ctx, id, userID, models.TestimonialStatusPending, to, s.now().UTC())
	switch {
	case err == nil:
		configslog.SLog.Infof("Tanıklık %d durumu %s olarak güncellendi (Kullanıcı: %d)", id, to, userID)
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		// başka hesaba ait kayıtlar da bulunamadı sayılır
		return ErrTestimonialNotFound
	case errors.Is(err, repositories.ErrStatusConflict):
		return ErrTestimonialNotPending
	default:
		configslog.Log.Error("Tanıklık durumu güncellenemedi", zap.Uint("id", id), zap.Error(err))
		return ErrTestimonialUpdate
	}
}

// WallForOwner yalnızca onaylı kayıtları en yeniden başlayarak döndürür.
func (s *TestimonialService) WallForOwner(ctx context.Context, userID uint) ([]models.Testimonial, error) {
	return s.repo.FindApprovedByOwner(ctx, userID, 0)
}

// WallByKey public duvar linkinden hesabın duvarını yükler.
func (s *TestimonialService) WallByKey(ctx context.Context, key string) (*Wall, error) {
	link, err := s.linkService.GetLinkByKey(ctx, key)
	if err != nil {
		if errors.Is(err, ErrLinkNotFound) {
			return nil, ErrWallNotFound
		}
		return nil, err
	}
	if link.Type.Name != models.TypeNameWall {
		return nil, ErrWallNotFound
	}
	items, err := s.WallForOwner(ctx, link.TargetID)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.GetSettings(ctx, link.TargetID)
	if err != nil {
		return nil, err
	}
	return &Wall{OwnerID: link.TargetID, Settings: settings, Testimonials: items}, nil
}

// WallLink hesabın public duvar linkini döndürür, yoksa oluşturur.
func (s *TestimonialService) WallLink(ctx context.Context, userID uint) (*models.Link, error) {
	return s.linkService.EnsureLink(ctx, userID, models.TypeNameWall, userID)
}

var _ ITestimonialService = (*TestimonialService)(nil)
