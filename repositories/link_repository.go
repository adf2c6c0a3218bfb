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

// ILinkRepository link veritabanı işlemleri için arayüz.
type ILinkRepository interface {
	Create(ctx context.Context, link *models.Link) error
	FindByID(ctx context.Context, id uint) (*models.Link, error)
	FindByKey(ctx context.Context, key string) (*models.Link, error)
	FindByTarget(ctx context.Context, typeID, targetID uint) (*models.Link, error)
	KeyExists(ctx context.Context, key string) (bool, error)
	Delete(ctx context.Context, link *models.Link, deletedByUserID uint) error
}

// LinkRepository ILinkRepository arayüzünü uygular.
type LinkRepository struct {
	db *gorm.DB
}

// NewLinkRepository yeni bir LinkRepository örneği oluşturur.
func NewLinkRepository() ILinkRepository {
	return &LinkRepository{db: configs.GetDB()}
}

// NewLinkRepositoryTx transaction (veya test bağlantısı) ile çalışan repository.
func NewLinkRepositoryTx(tx *gorm.DB) ILinkRepository {
	return &LinkRepository{db: tx}
}

// Create yeni bir link kaydı oluşturur. Key modelin BeforeCreate hook'unda üretilir.
func (r *LinkRepository) Create(ctx context.Context, link *models.Link) error {
	if link == nil {
		return errors.New("oluşturulacak link nil olamaz")
	}
	return dbFromContext(ctx, r.db).Create(link).Error
}

// FindByID ID ile bir link kaydını bulur (Type ilişkisiyle).
func (r *LinkRepository) FindByID(ctx context.Context, id uint) (*models.Link, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Link ID")
	}
	var link models.Link
	err := dbFromContext(ctx, r.db).Preload("Type").First(&link, id).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			configslog.Log.Error("LinkRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		}
		return nil, translateNotFound(err)
	}
	return &link, nil
}

// FindByKey public anahtar ile linki bulur (Type ilişkisiyle).
func (r *LinkRepository) FindByKey(ctx context.Context, key string) (*models.Link, error) {
	if key == "" {
		return nil, ErrNotFound
	}
	var link models.Link
	err := dbFromContext(ctx, r.db).Preload("Type").Where("links.key = ?", key).First(&link).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			configslog.Log.Error("LinkRepository.FindByKey: DB error", zap.String("key", key), zap.Error(err))
		}
		return nil, translateNotFound(err)
	}
	return &link, nil
}

// FindByTarget bir hedefe (örn. kullanıcının duvarı) ait linki bulur.
func (r *LinkRepository) FindByTarget(ctx context.Context, typeID, targetID uint) (*models.Link, error) {
	var link models.Link
	err := dbFromContext(ctx, r.db).Preload("Type").
		Where("type_id = ? AND target_id = ?", typeID, targetID).
		Order("id asc").First(&link).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &link, nil
}

// KeyExists anahtarın daha önce kullanılıp kullanılmadığını kontrol eder.
func (r *LinkRepository) KeyExists(ctx context.Context, key string) (bool, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Unscoped().Model(&models.Link{}).Where("links.key = ?", key).Count(&count).Error
	if err != nil {
		configslog.Log.Error("LinkRepository.KeyExists: DB error", zap.String("key", key), zap.Error(err))
		return false, err
	}
	return count > 0, nil
}

// Delete bir link kaydını siler (soft delete) ve silen kullanıcıyı yazar.
func (r *LinkRepository) Delete(ctx context.Context, link *models.Link, deletedByUserID uint) error {
	if link == nil || link.ID == 0 {
		return errors.New("silinecek link geçerli değil")
	}
	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if deletedByUserID != 0 {
			if err := tx.Model(link).UpdateColumn("deleted_by", deletedByUserID).Error; err != nil {
				configslog.Log.Error("LinkRepository.Delete: DeletedBy güncellenemedi", zap.Uint("link_id", link.ID), zap.Error(err))
				return err
			}
		}
		result := tx.Delete(link)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

var _ ILinkRepository = (*LinkRepository)(nil)
