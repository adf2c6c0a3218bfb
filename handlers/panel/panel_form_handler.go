package handlers

import (
	"errors"
	"net/http"

	"wallof.love/configs/configslog"
	"wallof.love/models"
	"wallof.love/pkg/flashmessages"
	"wallof.love/pkg/queryparams"
	"wallof.love/pkg/renderer"
	"wallof.love/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelFormHandler kullanıcının kendi tanıklık formları için handler.
type PanelFormHandler struct {
	service services.IFormService
}

func NewPanelFormHandler() *PanelFormHandler {
	return &PanelFormHandler{service: services.NewFormService()}
}

func formInputFromRequest(c *fiber.Ctx) services.FormInput {
	return services.FormInput{
		Title:           c.FormValue("title"),
		Description:     c.FormValue("description"),
		RequireApproval: checkboxValue(c, "require_approval"),
		AllowVideo:      checkboxValue(c, "allow_video"),
		IsActive:        checkboxValue(c, "is_active"),
		BrandColor:      c.FormValue("brand_color"),
		CompanyName:     c.FormValue("company_name"),
		CompanyLogo:     c.FormValue("company_logo"),
	}
}

// ListForms kullanıcının formlarını listeler.
func (h *PanelFormHandler) ListForms(c *fiber.Ctx) error {
	userID := currentUserID(c)

	params := queryparams.DefaultListParams("created_at")
	if err := c.QueryParser(&params); err != nil {
		params = queryparams.DefaultListParams("created_at")
	}
	params.Validate()

	result, err := h.service.GetFormsForUser(c.UserContext(), userID, params)
	data := viewData(c, "Formlarım")
	data["Result"] = result
	data["Params"] = params
	if err != nil {
		configslog.Log.Error("Panel - ListForms Error", zap.Uint("userID", userID), zap.Error(err))
		data[renderer.FlashErrorKeyView] = "Formlar listelenirken hata oluştu."
		data["Result"] = queryparams.NewPaginatedResult([]models.Form{}, 0, params)
	}
	return renderer.Render(c, "panel/forms/list", panelLayout, data, http.StatusOK)
}

// ShowCreateForm yeni form ekranını gösterir.
func (h *PanelFormHandler) ShowCreateForm(c *fiber.Ctx) error {
	data := viewData(c, "Yeni Form Oluştur")
	formData := flashmessages.GetFlashFormData(c)
	if len(formData) == 0 {
		d := services.DefaultFormInput()
		formData = map[string]any{
			"Title": "", "Description": "",
			"RequireApproval": d.RequireApproval, "AllowVideo": d.AllowVideo, "IsActive": d.IsActive,
		}
	}
	data["FormData"] = formData
	return renderer.Render(c, "panel/forms/create", panelLayout, data)
}

// CreateForm formu oluşturur ve alan düzenleme ekranına yönlendirir.
func (h *PanelFormHandler) CreateForm(c *fiber.Ctx) error {
	userID := currentUserID(c)
	in := formInputFromRequest(c)

	form, err := h.service.CreateForm(c.UserContext(), userID, in)
	if err != nil {
		msg := err.Error()
		var fe services.FormServiceError
		var se services.SettingsServiceError
		if !errors.As(err, &fe) && !errors.As(err, &se) {
			configslog.Log.Error("Panel - CreateForm Error", zap.Uint("userID", userID), zap.Error(err))
			msg = "Form oluşturulurken bir hata oluştu."
		}
		_ = flashmessages.SetFlashFormData(c, in)
		return redirectWithError(c, msg, "/panel/forms/create")
	}
	return redirectWithSuccess(c, "Form başarıyla oluşturuldu. Şimdi özel alanlarını ekleyebilirsiniz.",
		"/panel/forms/"+formatID(form.ID)+"/fields")
}

// ShowUpdateForm form düzenleme ekranını gösterir.
func (h *PanelFormHandler) ShowUpdateForm(c *fiber.Ctx) error {
	userID := currentUserID(c)
	formID, ok := paramID(c, "id")
	if !ok {
		return redirectWithError(c, "Geçersiz ID.", "/panel/forms")
	}
	form, err := h.service.GetFormByID(c.UserContext(), formID, userID)
	if err != nil {
		msg := "Form bulunamadı veya bu formu düzenleme yetkiniz yok."
		if !errors.Is(err, services.ErrFormNotFound) && !errors.Is(err, services.ErrFormForbidden) {
			msg = "Form bilgileri alınırken bir hata oluştu."
			configslog.Log.Error("Panel - ShowUpdateForm Error", zap.Uint("id", formID), zap.Uint("userID", userID), zap.Error(err))
		}
		return redirectWithError(c, msg, "/panel/forms")
	}

	data := viewData(c, "Formu Düzenle")
	data["Form"] = form
	data["FormData"] = flashmessages.GetFlashFormData(c)
	return renderer.Render(c, "panel/forms/update", panelLayout, data)
}

// UpdateForm form bilgilerini günceller.
func (h *PanelFormHandler) UpdateForm(c *fiber.Ctx) error {
	userID := currentUserID(c)
	formID, ok := paramID(c, "id")
	if !ok {
		return redirectWithError(c, "Geçersiz ID.", "/panel/forms")
	}
	back := "/panel/forms/update/" + formatID(formID)
	in := formInputFromRequest(c)

	if err := h.service.UpdateForm(c.UserContext(), formID, userID, in); err != nil {
		if errors.Is(err, services.ErrFormNotFound) || errors.Is(err, services.ErrFormForbidden) {
			return redirectWithError(c, err.Error(), "/panel/forms")
		}
		msg := err.Error()
		var fe services.FormServiceError
		var se services.SettingsServiceError
		if !errors.As(err, &fe) && !errors.As(err, &se) {
			configslog.Log.Error("Panel - UpdateForm Error", zap.Uint("id", formID), zap.Uint("userID", userID), zap.Error(err))
			msg = "Güncelleme sırasında bir hata oluştu."
		}
		_ = flashmessages.SetFlashFormData(c, in)
		return redirectWithError(c, msg, back)
	}
	return redirectWithSuccess(c, "Form başarıyla güncellendi.", back)
}

// DeleteForm formu siler. Gelen tanıklıklar korunur.
func (h *PanelFormHandler) DeleteForm(c *fiber.Ctx) error {
	userID := currentUserID(c)
	formID, ok := paramID(c, "id")
	if !ok {
		return redirectWithError(c, "Geçersiz ID.", "/panel/forms")
	}
	if err := h.service.DeleteForm(c.UserContext(), formID, userID); err != nil {
		if !errors.Is(err, services.ErrFormNotFound) && !errors.Is(err, services.ErrFormForbidden) {
			configslog.Log.Error("Panel - DeleteForm Error", zap.Uint("id", formID), zap.Uint("userID", userID), zap.Error(err))
		}
		return redirectWithError(c, "Silme hatası: "+err.Error(), "/panel/forms")
	}
	return redirectWithFlash(c, flashmessages.FlashSuccessKey, "Form başarıyla silindi.", "/panel/forms", fiber.StatusSeeOther)
}
