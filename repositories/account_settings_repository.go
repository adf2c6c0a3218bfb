package repositories

import (
	"context"
	"errors"

	"wallof.love/configs"
	"wallof.love/configs/configslog"
	"wallof.love/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IAccountSettingsRepository hesap ayarları için arayüz.
type IAccountSettingsRepository interface {
	FindByUserID(ctx context.Context, userID uint) (*models.AccountSettings, error)
	Create(ctx context.Context, settings *models.AccountSettings) error
	Update(ctx context.Context, settings *models.AccountSettings) error
}

// AccountSettingsRepository IAccountSettingsRepository arayüzünü uygular.
type AccountSettingsRepository struct {
	db *gorm.DB
}

func NewAccountSettingsRepository() IAccountSettingsRepository {
	return &AccountSettingsRepository{db: configs.GetDB()}
}

func NewAccountSettingsRepositoryTx(tx *gorm.DB) IAccountSettingsRepository {
	return &AccountSettingsRepository{db: tx}
}

func (r *AccountSettingsRepository) FindByUserID(ctx context.Context, userID uint) (*models.AccountSettings, error) {
	var settings models.AccountSettings
	err := dbFromContext(ctx, r.db).Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			configslog.Log.Error("AccountSettingsRepository.FindByUserID: DB error", zap.Uint("userID", userID), zap.Error(err))
		}
		return nil, translateNotFound(err)
	}
	return &settings, nil
}

func (r *AccountSettingsRepository) Create(ctx context.Context, settings *models.AccountSettings) error {
	if settings == nil || settings.UserID == 0 {
		return errors.New("kullanıcısı olmayan ayar kaydı oluşturulamaz")
	}
	return dbFromContext(ctx, r.db).Create(settings).Error
}

// Update düzenlenebilir tüm alanları yazar; boş değerler de kaydedilir.
func (r *AccountSettingsRepository) Update(ctx context.Context, settings *models.AccountSettings) error {
	if settings == nil || settings.ID == 0 {
		return errors.New("güncellenecek ayar kaydı geçersiz")
	}
	err := dbFromContext(ctx, r.db).Model(settings).
		Select("company_name", "company_logo", "brand_color", "custom_css", "email_notifications", "updated_at", "updated_by").
		Updates(settings).Error
	if err != nil {
		configslog.Log.Error("AccountSettingsRepository.Update: DB error", zap.Uint("id", settings.ID), zap.Error(err))
	}
	return err
}

var _ IAccountSettingsRepository = (*AccountSettingsRepository)(nil)
