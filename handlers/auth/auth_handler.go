package handlers

import (
	"errors"
	"strings"

	"wallof.love/configs/configslog"
	"wallof.love/middlewares"
	"wallof.love/pkg/flashmessages"
	"wallof.love/pkg/renderer"
	"wallof.love/services"
	"wallof.love/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const authLayout = "layouts/auth_layout"

// AuthHandler giriş, kayıt, çıkış ve API token uçları.
type AuthHandler struct {
	service services.IAuthService
}

func NewAuthHandler(service services.IAuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func authView(c *fiber.Ctx, view, title string) error {
	data := fiber.Map{"Title": title, "FormData": flashmessages.GetFlashFormData(c)}
	if flash, err := flashmessages.GetFlashMessages(c); err == nil {
		renderer.SetFlashMessages(data, flash)
	}
	return renderer.Render(c, view, authLayout, data)
}

func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return authView(c, "auth/login", "Giriş Yap")
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")

	user, err := h.service.Authenticate(c.UserContext(), email, password)
	if err != nil {
		msg := err.Error()
		var ae services.AuthServiceError
		if !errors.As(err, &ae) {
			configslog.Log.Error("Auth - Login Error", zap.Error(err))
			msg = "Giriş sırasında bir hata oluştu."
		}
		_ = flashmessages.SetFlashFormData(c, fiber.Map{"Email": email})
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	if err := utils.LoginSession(c, user.ID, user.Name); err != nil {
		configslog.Log.Error("Auth - oturum kaydedilemedi", zap.Uint("userID", user.ID), zap.Error(err))
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Oturum başlatılamadı.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Hoş geldiniz, "+user.Name+"!")
	return c.Redirect("/panel/home", fiber.StatusFound)
}

func (h *AuthHandler) ShowRegister(c *fiber.Ctx) error {
	return authView(c, "auth/register", "Kayıt Ol")
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	name := c.FormValue("name")
	email := c.FormValue("email")
	password := c.FormValue("password")
	if password != c.FormValue("password_confirm") {
		_ = flashmessages.SetFlashFormData(c, fiber.Map{"Name": name, "Email": email})
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Şifreler eşleşmiyor.")
		return c.Redirect("/auth/register", fiber.StatusSeeOther)
	}

	user, err := h.service.Register(c.UserContext(), name, email, password)
	if err != nil {
		msg := err.Error()
		var ae services.AuthServiceError
		if !errors.As(err, &ae) {
			configslog.Log.Error("Auth - Register Error", zap.Error(err))
			msg = "Kayıt sırasında bir hata oluştu."
		}
		_ = flashmessages.SetFlashFormData(c, fiber.Map{"Name": name, "Email": email})
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, msg)
		return c.Redirect("/auth/register", fiber.StatusSeeOther)
	}
	if err := utils.LoginSession(c, user.ID, user.Name); err != nil {
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Kayıt tamamlandı, lütfen giriş yapın.")
		return c.Redirect("/auth/login", fiber.StatusSeeOther)
	}
	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Hesabınız oluşturuldu. İlk formunuzu oluşturabilirsiniz.")
	return c.Redirect("/panel/forms/create", fiber.StatusFound)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	userID := middlewares.CurrentUserID(c)
	if err := utils.LogoutSession(c); err != nil {
		configslog.Log.Warn("Auth - oturum kapatılamadı", zap.Uint("userID", userID), zap.Error(err))
	}
	h.service.Logout(c.UserContext(), userID)
	return c.Redirect("/auth/login", fiber.StatusSeeOther)
}

type tokenRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// IssueToken e-posta/şifre ile API erişimi için bearer token verir.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var req tokenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "geçersiz istek"})
	}
	user, err := h.service.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		var ae services.AuthServiceError
		if errors.As(err, &ae) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
		}
		configslog.Log.Error("Auth - IssueToken Error", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "token oluşturulamadı"})
	}
	token, expires, err := h.service.IssueToken(user)
	if err != nil {
		configslog.Log.Error("Auth - token imzalanamadı", zap.Uint("userID", user.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "token oluşturulamadı"})
	}
	return c.JSON(fiber.Map{"token": token, "tokenType": "Bearer", "expiresAt": expires})
}
