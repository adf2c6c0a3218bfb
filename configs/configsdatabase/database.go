package configsdatabase

import (
	"fmt"
	"os"
	"time"

	"wallof.love/configs/configslog"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DSN ortam değişkenlerinden PostgreSQL bağlantı cümlesini üretir.
func DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		env("DB_HOST", "localhost"),
		env("DB_PORT", "5432"),
		env("DB_USER", "postgres"),
		env("DB_PASSWORD", "postgres"),
		env("DB_NAME", "wallof_love"),
		env("DB_SSLMODE", "disable"),
		env("DB_TIMEZONE", "UTC"),
	)
}

// InitDB veritabanı bağlantısını açar. Bağlantı kurulamazsa uygulama durdurulur.
func InitDB() {
	gormLogLevel := logger.Warn
	if env("APP_ENV", "development") == "development" {
		gormLogLevel = logger.Info
	}

	conn, err := gorm.Open(postgres.Open(DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		configslog.Log.Fatal("Veritabanına bağlanılamadı", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		configslog.Log.Fatal("sql.DB alınamadı", zap.Error(err))
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = conn
	configslog.SLog.Info("Veritabanı bağlantısı kuruldu.")
}

// SetDB dışarıda açılmış bir bağlantıyı (test, entegrasyon) paylaşılan bağlantı yapar.
func SetDB(conn *gorm.DB) {
	db = conn
}

// GetDB paylaşılan bağlantıyı döndürür.
func GetDB() *gorm.DB {
	return db
}

// CloseDB bağlantı havuzunu kapatır.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("Kapatma için sql.DB alınamadı", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("Veritabanı bağlantısı kapatılamadı", zap.Error(err))
		return
	}
	configslog.SLog.Info("Veritabanı bağlantısı kapatıldı.")
}
