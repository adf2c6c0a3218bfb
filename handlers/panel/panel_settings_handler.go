package handlers

import (
	"errors"

	"wallof.love/configs/configslog"
	"wallof.love/models"
	"wallof.love/pkg/renderer"
	"wallof.love/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelSettingsHandler hesap marka ve bildirim ayarları.
type PanelSettingsHandler struct {
	service services.ISettingsService
}

func NewPanelSettingsHandler() *PanelSettingsHandler {
	return &PanelSettingsHandler{service: services.NewSettingsService()}
}

func (h *PanelSettingsHandler) ShowSettings(c *fiber.Ctx) error {
	userID := currentUserID(c)
	data := viewData(c, "Ayarlar")
	settings, err := h.service.GetSettings(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("Panel - ShowSettings Error", zap.Uint("userID", userID), zap.Error(err))
		data[renderer.FlashErrorKeyView] = "Ayarlar yüklenemedi."
		defaults := models.DefaultAccountSettings(userID)
		settings = &defaults
	}
	data["Settings"] = settings
	return renderer.Render(c, "panel/settings", panelLayout, data)
}

func (h *PanelSettingsHandler) SaveSettings(c *fiber.Ctx) error {
	userID := currentUserID(c)
	in := services.SettingsInput{
		CompanyName:        c.FormValue("company_name"),
		CompanyLogo:        c.FormValue("company_logo"),
		BrandColor:         c.FormValue("brand_color"),
		CustomCSS:          c.FormValue("custom_css"),
		EmailNotifications: checkboxValue(c, "email_notifications"),
	}
	if _, err := h.service.SaveSettings(c.UserContext(), userID, in); err != nil {
		var se services.SettingsServiceError
		if errors.As(err, &se) && !errors.Is(err, services.ErrSettingsSaveFailed) {
			return redirectWithError(c, err.Error(), "/panel/settings")
		}
		configslog.Log.Error("Panel - SaveSettings Error", zap.Uint("userID", userID), zap.Error(err))
		return redirectWithError(c, "Ayarlar kaydedilemedi.", "/panel/settings")
	}
	return redirectWithSuccess(c, "Ayarlar kaydedildi.", "/panel/settings")
}
