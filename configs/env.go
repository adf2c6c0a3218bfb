package configs

import (
	"os"
	"strconv"
	"strings"

	"wallof.love/configs/configslog"

	"github.com/joho/godotenv"
)

// LoadEnv .env dosyasını yükler. Dosya yoksa ortam değişkenleri kullanılmaya devam edilir.
func LoadEnv(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		configslog.SLog.Infof(".env dosyası yüklenemedi, ortam değişkenleri kullanılacak: %v", err)
	}
}

// GetEnv değişkeni döndürür, boşsa fallback değerini kullanır.
func GetEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

// GetEnvInt tam sayı değişkeni okur.
func GetEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		configslog.SLog.Warnf("%s tam sayı değil (%q), varsayılan kullanılıyor: %d", key, v, fallback)
		return fallback
	}
	return n
}

// GetEnvBool "true/1/yes/on" değerlerini true kabul eder.
func GetEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}

// IsProduction APP_ENV production ise true döner.
func IsProduction() bool {
	return GetEnv("APP_ENV", "development") == "production"
}
