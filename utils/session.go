package utils

import (
	"errors"
	"fmt"

	"wallof.love/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	SessionUserIDKey   = "user_id"
	SessionUserNameKey = "user_name"
)

var ErrNoUserInSession = errors.New("oturumda kullanıcı yok")

// SessionStart isteğin oturumunu döndürür.
func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		store = configs.SetupSession()
	}
	sess, err := store.Get(c)
	if err != nil {
		return nil, fmt.Errorf("oturum başlatılamadı: %w", err)
	}
	return sess, nil
}

// GetUserIDFromSession oturumdaki kullanıcı ID'sini okur.
func GetUserIDFromSession(sess *session.Session) (uint, error) {
	switch v := sess.Get(SessionUserIDKey).(type) {
	case uint:
		if v != 0 {
			return v, nil
		}
	case int:
		if v > 0 {
			return uint(v), nil
		}
	}
	return 0, ErrNoUserInSession
}

// LoginSession kullanıcıyı oturuma yazar. Oturum sabitleme (fixation) riskine karşı ID yenilenir.
func LoginSession(c *fiber.Ctx, userID uint, userName string) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(SessionUserIDKey, userID)
	sess.Set(SessionUserNameKey, userName)
	return sess.Save()
}

// LogoutSession oturumu yok eder.
func LogoutSession(c *fiber.Ctx) error {
	sess, err := SessionStart(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}
