package renderer

import (
	"net/http"

	"wallof.love/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// SetFlashMessages flash mesajlarını view verisine ekler.
func SetFlashMessages(data fiber.Map, flash flashmessages.FlashData) {
	if flash.Success != "" {
		data[FlashSuccessKeyView] = flash.Success
	}
	if flash.Error != "" {
		data[FlashErrorKeyView] = flash.Error
	}
}

// Render view'ı layout ile çizer; CSRF token ve kullanıcı adı gibi ortak verileri ekler.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	if data == nil {
		data = fiber.Map{}
	}
	if _, ok := data["CsrfToken"]; !ok {
		data["CsrfToken"] = c.Locals("csrf")
	}
	if _, ok := data["UserName"]; !ok {
		data["UserName"] = c.Locals("userName")
	}
	data["CurrentPath"] = c.Path()
	return c.Status(code).Render(view, data, layout)
}
