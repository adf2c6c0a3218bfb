package migrations

import (
	"fmt"

	"wallof.love/configs/configslog"
	"wallof.love/models"

	"gorm.io/gorm"
)

func MigrateTypesTable(db *gorm.DB) error {
	configslog.SLog.Info("Type tablosu migrate ediliyor...")

	if err := db.AutoMigrate(&models.Type{}); err != nil {
		configslog.Log.Error("Type tablosu migrate edilemedi: " + err.Error())
		return fmt.Errorf("type tablosu migrate edilemedi: %w", err)
	}

	configslog.SLog.Info("Type tablosu migrate işlemi tamamlandı.")
	return nil
}
