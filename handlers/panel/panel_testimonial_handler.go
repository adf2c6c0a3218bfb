package handlers

import (
	"errors"

	"wallof.love/configs/configslog"
	"wallof.love/models"
	"wallof.love/pkg/flashmessages"
	"wallof.love/pkg/queryparams"
	"wallof.love/pkg/renderer"
	"wallof.love/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelTestimonialHandler moderasyon ve duvar ekranları.
type PanelTestimonialHandler struct {
	service services.ITestimonialService
}

func NewPanelTestimonialHandler() *PanelTestimonialHandler {
	return &PanelTestimonialHandler{service: services.NewTestimonialService()}
}

// ListTestimonials gelen tanıklıkları durum sekmeleriyle listeler.
func (h *PanelTestimonialHandler) ListTestimonials(c *fiber.Ctx) error {
	userID := currentUserID(c)
	params := queryparams.DefaultListParams("created_at")
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()
	if params.Status == "" {
		params.Status = "all"
	}

	result, err := h.service.ListForOwner(c.UserContext(), userID, params)
	data := viewData(c, "Tanıklıklar")
	data["Result"] = result
	data["Params"] = params
	data["StatusFilters"] = services.StatusFilters
	if err != nil {
		configslog.Log.Error("Panel - ListTestimonials Error", zap.Uint("userID", userID), zap.Error(err))
		data[renderer.FlashErrorKeyView] = "Tanıklıklar yüklenirken hata oluştu."
		data["Result"] = queryparams.NewPaginatedResult([]models.Testimonial{}, 0, params)
	}
	return renderer.Render(c, "panel/testimonials/list", panelLayout, data)
}

func (h *PanelTestimonialHandler) moderate(c *fiber.Ctx, approve bool) error {
	userID := currentUserID(c)
	back := c.Get(fiber.HeaderReferer, "/panel/testimonials")
	id, ok := paramID(c, "id")
	if !ok {
		return redirectWithError(c, "Geçersiz ID.", back)
	}

	var err error
	if approve {
		err = h.service.Approve(c.UserContext(), userID, id)
	} else {
		err = h.service.Reject(c.UserContext(), userID, id)
	}
	if err != nil {
		var te services.TestimonialServiceError
		if !errors.As(err, &te) {
			configslog.Log.Error("Panel - moderate Error", zap.Uint("id", id), zap.Error(err))
		}
		return redirectWithError(c, err.Error(), back)
	}
	if approve {
		return redirectWithFlash(c, flashmessages.FlashSuccessKey, "Tanıklık onaylandı ve duvarda yayında.", back, fiber.StatusSeeOther)
	}
	return redirectWithFlash(c, flashmessages.FlashSuccessKey, "Tanıklık reddedildi.", back, fiber.StatusSeeOther)
}

func (h *PanelTestimonialHandler) Approve(c *fiber.Ctx) error { return h.moderate(c, true) }

func (h *PanelTestimonialHandler) Reject(c *fiber.Ctx) error { return h.moderate(c, false) }

// ShowWall hesabın onaylı tanıklıklarını ve public duvar linkini gösterir.
func (h *PanelTestimonialHandler) ShowWall(c *fiber.Ctx) error {
	userID := currentUserID(c)
	data := viewData(c, "Wall of Love")

	items, err := h.service.WallForOwner(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("Panel - ShowWall Error", zap.Uint("userID", userID), zap.Error(err))
		data[renderer.FlashErrorKeyView] = "Duvar yüklenemedi."
		items = []models.Testimonial{}
	}
	data["Testimonials"] = items

	if link, err := h.service.WallLink(c.UserContext(), userID); err == nil {
		data["WallURL"] = c.BaseURL() + "/" + link.Key
		data["EmbedURL"] = c.BaseURL() + "/api/v1/wall/" + link.Key
	} else {
		configslog.Log.Warn("Panel - WallLink Error", zap.Uint("userID", userID), zap.Error(err))
	}
	return renderer.Render(c, "panel/wall", panelLayout, data)
}
