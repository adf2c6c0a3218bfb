package migrations

import (
	"wallof.love/configs/configslog"
	"wallof.love/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateAccountSettingsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating account_settings table...")
	if err := db.AutoMigrate(&models.AccountSettings{}); err != nil {
		configslog.Log.Error("Failed to migrate account_settings table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Account_settings table migrated successfully")
	return nil
}
