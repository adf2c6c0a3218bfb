package migrations

import (
	"wallof.love/configs/configslog"
	"wallof.love/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateTestimonialsTable tanıklık tablosunu oluşturur. Form ve kullanıcı tabloları
// önceden migrate edilmiş olmalıdır.
func MigrateTestimonialsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating testimonials table...")
	if err := db.AutoMigrate(&models.Testimonial{}); err != nil {
		configslog.Log.Error("Failed to migrate testimonials table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Testimonials table migrated successfully")
	return nil
}
