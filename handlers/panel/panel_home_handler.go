package handlers

import (
	"wallof.love/configs/configslog"
	"wallof.love/pkg/renderer"
	"wallof.love/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelHomeHandler panel ana sayfası ve istatistik ekranı.
type PanelHomeHandler struct {
	analytics services.IAnalyticsService
}

func NewPanelHomeHandler() *PanelHomeHandler {
	return &PanelHomeHandler{analytics: services.NewAnalyticsService()}
}

func (h *PanelHomeHandler) summary(c *fiber.Ctx, title string) fiber.Map {
	userID := currentUserID(c)
	data := viewData(c, title)
	summary, err := h.analytics.Summary(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("Panel - Summary Error", zap.Uint("userID", userID), zap.Error(err))
		data[renderer.FlashErrorKeyView] = "İstatistikler yüklenemedi."
		summary = &services.Summary{}
	}
	data["Summary"] = summary
	return data
}

// PanelHome son tanıklıklar ve özet kartları.
func (h *PanelHomeHandler) PanelHome(c *fiber.Ctx) error {
	return renderer.Render(c, "panel/home", panelLayout, h.summary(c, "Panel"))
}

// Analytics ayrıntılı istatistikler.
func (h *PanelHomeHandler) Analytics(c *fiber.Ctx) error {
	return renderer.Render(c, "panel/analytics", panelLayout, h.summary(c, "İstatistikler"))
}
