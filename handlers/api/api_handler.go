package handlers

import (
	"errors"
	"time"

	"wallof.love/configs/configslog"
	"wallof.love/middlewares"
	"wallof.love/models"
	"wallof.love/pkg/queryparams"
	"wallof.love/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// APIHandler /api/v1 altındaki JSON uçları.
type APIHandler struct {
	testimonials services.ITestimonialService
	analytics    services.IAnalyticsService
}

func NewAPIHandler() *APIHandler {
	return &APIHandler{
		testimonials: services.NewTestimonialService(),
		analytics:    services.NewAnalyticsService(),
	}
}

// WallItem duvarda herkese açık gösterilen alanlar (e-posta yok).
type WallItem struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	VideoURL  string    `json:"videoUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TestimonialItem hesap sahibine dönen tam kayıt.
type TestimonialItem struct {
	WallItem
	FormID       uint           `json:"formId"`
	Email        string         `json:"email"`
	Status       string         `json:"status"`
	CustomFields map[string]any `json:"customFields,omitempty"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func toWallItem(t models.Testimonial) WallItem {
	return WallItem{
		ID: t.ID, Name: t.Name, Company: t.Company, Rating: t.Rating, Content: t.Content,
		ImageURL: t.ImageURL, VideoURL: t.VideoURL, CreatedAt: t.CreatedAt,
	}
}

func toTestimonialItem(t models.Testimonial) TestimonialItem {
	return TestimonialItem{
		WallItem: toWallItem(t), FormID: t.FormID, Email: t.Email, Status: string(t.Status),
		CustomFields: t.CustomFields, UpdatedAt: t.UpdatedAt,
	}
}

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// Wall public duvarı JSON olarak döndürür (gömme için).
func (h *APIHandler) Wall(c *fiber.Ctx) error {
	wall, err := h.testimonials.WallByKey(c.UserContext(), c.Params("key"))
	if err != nil {
		if errors.Is(err, services.ErrWallNotFound) {
			return jsonError(c, fiber.StatusNotFound, err.Error())
		}
		configslog.Log.Error("API - Wall Error", zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "duvar yüklenemedi")
	}
	items := make([]WallItem, 0, len(wall.Testimonials))
	for _, t := range wall.Testimonials {
		items = append(items, toWallItem(t))
	}
	return c.JSON(fiber.Map{
		"brandColor":   wall.Settings.BrandColor,
		"companyName":  wall.Settings.CompanyName,
		"companyLogo":  wall.Settings.CompanyLogo,
		"testimonials": items,
	})
}

// ListTestimonials ?status=pending|approved|rejected|all&page=&per_page=
func (h *APIHandler) ListTestimonials(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)
	params := queryparams.DefaultListParams("created_at")
	if err := c.QueryParser(&params); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "geçersiz sorgu parametreleri")
	}
	result, err := h.testimonials.ListForOwner(c.UserContext(), userID, params)
	if err != nil {
		configslog.Log.Error("API - ListTestimonials Error", zap.Uint("userID", userID), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "tanıklıklar yüklenemedi")
	}
	rows, _ := result.Data.([]models.Testimonial)
	items := make([]TestimonialItem, 0, len(rows))
	for _, t := range rows {
		items = append(items, toTestimonialItem(t))
	}
	return c.JSON(fiber.Map{"data": items, "meta": result.Meta})
}

func (h *APIHandler) moderate(c *fiber.Ctx, approve bool) error {
	userID := middlewares.CurrentUserID(c)
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return jsonError(c, fiber.StatusBadRequest, "geçersiz ID")
	}
	if approve {
		err = h.testimonials.Approve(c.UserContext(), userID, uint(id))
	} else {
		err = h.testimonials.Reject(c.UserContext(), userID, uint(id))
	}
	switch {
	case err == nil:
		status := models.TestimonialStatusRejected
		if approve {
			status = models.TestimonialStatusApproved
		}
		return c.JSON(fiber.Map{"id": id, "status": status})
	case errors.Is(err, services.ErrTestimonialNotFound):
		return jsonError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrTestimonialNotPending):
		return jsonError(c, fiber.StatusConflict, err.Error())
	default:
		configslog.Log.Error("API - moderate Error", zap.Int("id", id), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "durum güncellenemedi")
	}
}

func (h *APIHandler) Approve(c *fiber.Ctx) error { return h.moderate(c, true) }

func (h *APIHandler) Reject(c *fiber.Ctx) error { return h.moderate(c, false) }

// Analytics hesabın özet istatistikleri.
func (h *APIHandler) Analytics(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)
	s, err := h.analytics.Summary(c.UserContext(), userID)
	if err != nil {
		configslog.Log.Error("API - Analytics Error", zap.Uint("userID", userID), zap.Error(err))
		return jsonError(c, fiber.StatusInternalServerError, "istatistikler yüklenemedi")
	}
	recent := make([]TestimonialItem, 0, len(s.Recent))
	for _, t := range s.Recent {
		recent = append(recent, toTestimonialItem(t))
	}
	return c.JSON(fiber.Map{
		"total":                 s.Total,
		"approved":              s.Approved,
		"pending":               s.Pending,
		"rejected":              s.Rejected,
		"averageRating":         s.AverageRating.InexactFloat64(),
		"approvedAverageRating": s.ApprovedAverageRating.InexactFloat64(),
		"approvalRate":          s.ApprovalRate().InexactFloat64(),
		"formCount":             s.FormCount,
		"recent":                recent,
	})
}
