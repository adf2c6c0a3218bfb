package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"wallof.love/configs/configslog"
	"wallof.love/models"
	"wallof.love/repositories"

	"go.uber.org/zap"
)

// SettingsServiceError özel servis hataları
type SettingsServiceError string

func (e SettingsServiceError) Error() string { return string(e) }

const (
	ErrSettingsSaveFailed    SettingsServiceError = "ayarlar kaydedilemedi"
	ErrSettingsInvalidColor  SettingsServiceError = "marka rengi #RRGGBB biçiminde olmalıdır"
	ErrSettingsInvalidLogo   SettingsServiceError = "logo adresi http(s) veya / ile başlamalıdır"
	ErrSettingsCSSTooLong    SettingsServiceError = "özel CSS en fazla 10000 karakter olabilir"
	ErrSettingsInvalidUserID SettingsServiceError = "geçersiz kullanıcı"
)

const maxCustomCSSLength = 10000

var brandColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateBrandColor boş değeri kabul eder; aksi halde #RRGGBB olmalıdır.
func ValidateBrandColor(color string) error {
	if color == "" || brandColorPattern.MatchString(color) {
		return nil
	}
	return ErrSettingsInvalidColor
}

func validateLogoURL(u string) error {
	if u == "" || strings.HasPrefix(u, "/") || strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return nil
	}
	return ErrSettingsInvalidLogo
}

// SettingsInput panelden gelen ayar formu.
type SettingsInput struct {
	CompanyName        string
	CompanyLogo        string
	BrandColor         string
	CustomCSS          string
	EmailNotifications bool
}

// ISettingsService hesap ayarları için arayüz.
type ISettingsService interface {
	// GetSettings kayıt yoksa kaydedilmemiş varsayılanları döndürür.
	GetSettings(ctx context.Context, userID uint) (*models.AccountSettings, error)
	SaveSettings(ctx context.Context, userID uint, in SettingsInput) (*models.AccountSettings, error)
}

type SettingsService struct {
	repo repositories.IAccountSettingsRepository
}

func NewSettingsService() ISettingsService {
	return NewSettingsServiceWith(repositories.NewAccountSettingsRepository())
}

func NewSettingsServiceWith(repo repositories.IAccountSettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) GetSettings(ctx context.Context, userID uint) (*models.AccountSettings, error) {
	if userID == 0 {
		return nil, ErrSettingsInvalidUserID
	}
	settings, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			defaults := models.DefaultAccountSettings(userID)
			return &defaults, nil
		}
		return nil, err
	}
	if settings.BrandColor == "" {
		settings.BrandColor = models.DefaultBrandColor
	}
	return settings, nil
}

// SaveSettings ilk kayıtta oluşturur, sonrasında yerinde günceller.
func (s *SettingsService) SaveSettings(ctx context.Context, userID uint, in SettingsInput) (*models.AccountSettings, error) {
	if userID == 0 {
		return nil, ErrSettingsInvalidUserID
	}
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.CompanyLogo = strings.TrimSpace(in.CompanyLogo)
	in.BrandColor = strings.TrimSpace(in.BrandColor)
	if in.BrandColor == "" {
		in.BrandColor = models.DefaultBrandColor
	}
	if err := ValidateBrandColor(in.BrandColor); err != nil {
		return nil, err
	}
	if err := validateLogoURL(in.CompanyLogo); err != nil {
		return nil, err
	}
	if len(in.CustomCSS) > maxCustomCSSLength {
		return nil, ErrSettingsCSSTooLong
	}

	ctx = models.WithUserID(ctx, userID)
	existing, err := s.repo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrSettingsSaveFailed
	}

	settings := existing
	if settings == nil {
		settings = &models.AccountSettings{UserID: userID}
	}
	settings.CompanyName = in.CompanyName
	settings.CompanyLogo = in.CompanyLogo
	settings.BrandColor = in.BrandColor
	settings.CustomCSS = in.CustomCSS
	settings.EmailNotifications = in.EmailNotifications

	if existing == nil {
		err = s.repo.Create(ctx, settings)
	} else {
		err = s.repo.Update(ctx, settings)
	}
	if err != nil {
		configslog.Log.Error("Hesap ayarları kaydedilemedi", zap.Uint("userID", userID), zap.Error(err))
		return nil, ErrSettingsSaveFailed
	}
	return settings, nil
}

var _ ISettingsService = (*SettingsService)(nil)
