package handlers

import (
	"strconv"
	"strings"

	"wallof.love/middlewares"
	"wallof.love/pkg/flashmessages"
	"wallof.love/pkg/renderer"

	"github.com/gofiber/fiber/v2"
)

const panelLayout = "layouts/panel_layout"

// paramID rota parametresini pozitif bir ID olarak okur.
func paramID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// checkboxValue HTML checkbox değerini yorumlar ("on", "true", "1").
func checkboxValue(c *fiber.Ctx, name string) bool {
	switch strings.ToLower(strings.TrimSpace(c.FormValue(name))) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

func redirectWithFlash(c *fiber.Ctx, key, message, path string, status int) error {
	_ = flashmessages.SetFlashMessage(c, key, message)
	return c.Redirect(path, status)
}

func redirectWithError(c *fiber.Ctx, message, path string) error {
	return redirectWithFlash(c, flashmessages.FlashErrorKey, message, path, fiber.StatusSeeOther)
}

func redirectWithSuccess(c *fiber.Ctx, message, path string) error {
	return redirectWithFlash(c, flashmessages.FlashSuccessKey, message, path, fiber.StatusFound)
}

// viewData başlık ve flash mesajlarıyla view verisini hazırlar.
func viewData(c *fiber.Ctx, title string) fiber.Map {
	data := fiber.Map{"Title": title}
	if flash, err := flashmessages.GetFlashMessages(c); err == nil {
		renderer.SetFlashMessages(data, flash)
	}
	return data
}

func currentUserID(c *fiber.Ctx) uint {
	return middlewares.CurrentUserID(c)
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
