package configs

import (
	"wallof.love/configs/configsdatabase"

	"gorm.io/gorm"
)

// GetDB paylaşılan veritabanı bağlantısını döndürür.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}
