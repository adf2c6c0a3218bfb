package handlers

import (
	"errors"
	"strings"

	"wallof.love/configs/configslog"
	"wallof.love/pkg/formschema"
	"wallof.love/pkg/renderer"
	"wallof.love/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PanelFieldHandler formların özel alanlarını (şema) yönetir.
type PanelFieldHandler struct {
	forms  services.IFormService
	fields services.IFormFieldService
}

func NewPanelFieldHandler() *PanelFieldHandler {
	return &PanelFieldHandler{forms: services.NewFormService(), fields: services.NewFormFieldService()}
}

// splitOptions textarea'daki her satırı bir seçenek olarak okur.
func splitOptions(raw string) []string {
	return formschema.CleanOptions(strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n"))
}

func fieldsPath(formID uint) string {
	return "/panel/forms/" + formatID(formID) + "/fields"
}

// fieldErrorMessage guard reddetmelerini ve servis hatalarını kullanıcı mesajına çevirir.
func fieldErrorMessage(err error) string {
	var rejection *formschema.Rejection
	var fe services.FieldServiceError
	var ferr services.FormServiceError
	switch {
	case errors.As(err, &rejection):
		return rejection.Reason
	case errors.As(err, &fe), errors.As(err, &ferr):
		return err.Error()
	}
	return "İşlem sırasında bir hata oluştu."
}

// ListFields form şeması ekranı: mevcut alanlar, önizleme ve ekleme formu.
func (h *PanelFieldHandler) ListFields(c *fiber.Ctx) error {
	userID := currentUserID(c)
	formID, ok := paramID(c, "id")
	if !ok {
		return redirectWithError(c, "Geçersiz ID.", "/panel/forms")
	}
	form, err := h.forms.GetFormByID(c.UserContext(), formID, userID)
	if err != nil {
		return redirectWithError(c, "Form bulunamadı veya yetkiniz yok.", "/panel/forms")
	}
	fields, err := h.fields.ListFields(c.UserContext(), userID, formID)
	if err != nil {
		configslog.Log.Error("Panel - ListFields Error", zap.Uint("form_id", formID), zap.Error(err))
		return redirectWithError(c, "Form alanları yüklenemedi.", "/panel/forms")
	}

	data := viewData(c, "Form Alanları")
	data["Form"] = form
	data["Fields"] = fields
	data["Preview"] = formschema.Render(fields, nil)
	data["FieldTypes"] = formschema.FieldTypes
	return renderer.Render(c, "panel/forms/fields", panelLayout, data)
}

// AddField forma yeni alan ekler.
func (h *PanelFieldHandler) AddField(c *fiber.Ctx) error {
	userID := currentUserID(c)
	formID, ok := paramID(c, "id")
	if !ok {
		return redirectWithError(c, "Geçersiz ID.", "/panel/forms")
	}
	in := services.FieldInput{
		FieldType:   c.FormValue("field_type"),
		Label:       c.FormValue("label"),
		Placeholder: c.FormValue("placeholder"),
		Required:    checkboxValue(c, "required"),
		Options:     splitOptions(c.FormValue("options")),
	}
	if _, err := h.fields.AddField(c.UserContext(), userID, formID, in); err != nil {
		if errors.Is(err, services.ErrFormForbidden) || errors.Is(err, services.ErrFormNotFound) {
			return redirectWithError(c, err.Error(), "/panel/forms")
		}
		configslog.Log.Warn("Panel - AddField rejected", zap.Uint("form_id", formID), zap.Error(err))
		return redirectWithError(c, fieldErrorMessage(err), fieldsPath(formID))
	}
	return redirectWithSuccess(c, "Alan eklendi.", fieldsPath(formID))
}

// UpdateField alanı yerinde günceller; sırası değişmez.
func (h *PanelFieldHandler) UpdateField(c *fiber.Ctx) error {
	userID := currentUserID(c)
	formID, okForm := paramID(c, "id")
	fieldID, okField := paramID(c, "fieldId")
	if !okForm || !okField {
		return redirectWithError(c, "Geçersiz ID.", "/panel/forms")
	}

	label := c.FormValue("label")
	fieldType := c.FormValue("field_type")
	placeholder := c.FormValue("placeholder")
	required := checkboxValue(c, "required")
	patch := services.FieldPatch{
		Label:       &label,
		Placeholder: &placeholder,
		Required:    &required,
	}
	if fieldType != "" {
		patch.FieldType = &fieldType
	}
	if t, ok := formschema.ParseFieldType(fieldType); ok && t.HasOptions() {
		options := splitOptions(c.FormValue("options"))
		patch.Options = &options
	}

	if _, err := h.fields.UpdateField(c.UserContext(), userID, fieldID, patch); err != nil {
		return redirectWithError(c, fieldErrorMessage(err), fieldsPath(formID))
	}
	return redirectWithSuccess(c, "Alan güncellendi.", fieldsPath(formID))
}

// DeleteField alanı siler.
func (h *PanelFieldHandler) DeleteField(c *fiber.Ctx) error {
	userID := currentUserID(c)
	formID, okForm := paramID(c, "id")
	fieldID, okField := paramID(c, "fieldId")
	if !okForm || !okField {
		return redirectWithError(c, "Geçersiz ID.", "/panel/forms")
	}
	if err := h.fields.DeleteField(c.UserContext(), userID, fieldID); err != nil {
		return redirectWithError(c, fieldErrorMessage(err), fieldsPath(formID))
	}
	return redirectWithSuccess(c, "Alan silindi.", fieldsPath(formID))
}

// MoveField alanı bir yukarı veya aşağı taşır.
func (h *PanelFieldHandler) MoveField(c *fiber.Ctx) error {
	userID := currentUserID(c)
	formID, okForm := paramID(c, "id")
	fieldID, okField := paramID(c, "fieldId")
	if !okForm || !okField {
		return redirectWithError(c, "Geçersiz ID.", "/panel/forms")
	}
	dir, err := formschema.ParseDirection(c.FormValue("direction"))
	if err != nil {
		return redirectWithError(c, fieldErrorMessage(err), fieldsPath(formID))
	}
	if _, err := h.fields.MoveField(c.UserContext(), userID, fieldID, dir); err != nil {
		if !errors.Is(err, formschema.ErrMoveBoundary) {
			configslog.Log.Warn("Panel - MoveField Error", zap.Uint("field_id", fieldID), zap.Error(err))
		}
		return redirectWithError(c, fieldErrorMessage(err), fieldsPath(formID))
	}
	return c.Redirect(fieldsPath(formID), fiber.StatusSeeOther)
}
