package migrations

import (
	"wallof.love/configs/configslog"
	"wallof.love/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateLinksTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating links table...")
	if err := db.AutoMigrate(&models.Link{}); err != nil {
		configslog.Log.Error("Failed to migrate links table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Links table migrated successfully")
	return nil
}
