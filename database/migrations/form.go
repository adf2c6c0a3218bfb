package migrations

import (
	"wallof.love/configs/configslog"
	"wallof.love/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateFormsTables formlar ve form alanları tablolarını oluşturur.
func MigrateFormsTables(db *gorm.DB) error {
	configslog.SLog.Info("Migrating forms & form_fields tables...")
	err := db.AutoMigrate(&models.Form{}, &models.FormField{})
	if err != nil {
		configslog.Log.Error("Failed to migrate forms & form_fields tables", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Forms & form_fields tables migrated successfully")
	return nil
}
