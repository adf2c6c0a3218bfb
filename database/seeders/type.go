package seeders

import (
	"context"
	"errors"

	"wallof.love/configs/configslog"
	"wallof.love/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SystemUserID seed kayıtlarında CreatedBy olarak yazılır.
const SystemUserID uint = 1

// DefaultTypes public linklerin yönlendirebileceği hizmet türleridir.
func DefaultTypes() []models.Type {
	return []models.Type{
		{Name: models.TypeNameForm, Description: "Tanıklık Toplama Formu"},
		{Name: models.TypeNameWall, Description: "Wall of Love Sayfası"},
	}
}

// SeedTypes eksik hizmet türlerini oluşturur, mevcut olanlara dokunmaz.
func SeedTypes(db *gorm.DB) error {
	ctx := models.WithUserID(context.Background(), SystemUserID)

	var createdCount int64
	errorOccurred := false

	configslog.SLog.Info("Hizmet türleri seed işlemi başlıyor...")

	for _, typeToSeed := range DefaultTypes() {
		var existingType models.Type
		result := db.Where("name = ?", typeToSeed.Name).First(&existingType)

		if result.Error == nil {
			configslog.SLog.Debugf("Hizmet türü '%s' zaten mevcut, oluşturma atlanıyor.", typeToSeed.Name)
			continue
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Hizmet türü kontrol edilirken veritabanı hatası",
				zap.String("type_name", typeToSeed.Name),
				zap.Error(result.Error),
			)
			errorOccurred = true
			continue
		}

		if err := db.WithContext(ctx).Create(&typeToSeed).Error; err != nil {
			configslog.Log.Error("Hizmet türü oluşturulamadı",
				zap.String("type_name", typeToSeed.Name),
				zap.Error(err),
			)
			errorOccurred = true
			continue
		}
		configslog.SLog.Infof("Hizmet türü '%s' oluşturuldu (ID: %d).", typeToSeed.Name, typeToSeed.ID)
		createdCount++
	}

	if createdCount > 0 {
		configslog.SLog.Infof("%d adet yeni hizmet türü seed edildi.", createdCount)
	} else if !errorOccurred {
		configslog.SLog.Info("Tüm hizmet türleri zaten mevcut, yeni ekleme yapılmadı.")
	}

	if errorOccurred {
		return errors.New("hizmet türleri seed edilirken en az bir hata oluştu")
	}
	return nil
}
