package configs

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/fiber/v2/utils"
)

var (
	sessionStore *session.Store
	sessionOnce  sync.Once
)

// SetupSession uygulama genelinde tek bir session store oluşturur.
func SetupSession() *session.Store {
	sessionOnce.Do(func() {
		hours := GetEnvInt("SESSION_EXPIRATION_HOURS", 24)
		sessionStore = session.New(session.Config{
			Expiration:     time.Duration(hours) * time.Hour,
			KeyLookup:      "cookie:wallof_session",
			CookieHTTPOnly: true,
			CookieSecure:   IsProduction(),
			CookieSameSite: "Lax",
			KeyGenerator:   utils.UUIDv4,
		})
	})
	return sessionStore
}
