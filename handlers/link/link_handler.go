package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"wallof.love/configs/configslog"
	"wallof.love/models"
	"wallof.love/pkg/formschema"
	"wallof.love/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const publicLayout = "layouts/public_layout"

// LinkHandler public link isteklerini (form ve duvar) yönetir.
type LinkHandler struct {
	linkService        services.ILinkService
	submissionService  services.ISubmissionService
	testimonialService services.ITestimonialService
}

func NewLinkHandler() *LinkHandler {
	return &LinkHandler{
		linkService:        services.NewLinkService(),
		submissionService:  services.NewSubmissionService(),
		testimonialService: services.NewTestimonialService(),
	}
}

func (h *LinkHandler) renderNotFound(c *fiber.Ctx, title string) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{"Title": title}, "layouts/error_layout")
}

func (h *LinkHandler) renderError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{"Title": "Hata", "Message": message}, "layouts/error_layout")
}

func validKey(key string) bool {
	return len(key) == models.LinkKeyLength
}

// HandleLink /:key isteğini link tipine göre form veya duvar sayfasına yönlendirir.
func (h *LinkHandler) HandleLink(c *fiber.Ctx) error {
	key := c.Params("key")
	if !validKey(key) {
		return h.renderNotFound(c, "Geçersiz Link")
	}
	link, err := h.linkService.GetLinkByKey(c.UserContext(), key)
	if err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			return h.renderNotFound(c, "Link Bulunamadı")
		}
		configslog.Log.Error("HandleLink: GetLinkByKey error", zap.String("key", key), zap.Error(err))
		return h.renderError(c, "Link bilgileri alınırken bir sorun oluştu.")
	}

	switch link.Type.Name {
	case models.TypeNameForm:
		return h.ShowForm(c)
	case models.TypeNameWall:
		return h.ShowWall(c)
	default:
		configslog.Log.Error("HandleLink: Bilinmeyen link tipi", zap.String("key", key), zap.String("type", link.Type.Name))
		return h.renderNotFound(c, "Geçersiz Link Türü")
	}
}

func (h *LinkHandler) renderForm(c *fiber.Ctx, pf *services.PublicForm, rendered []formschema.RenderedField,
	core formschema.CoreInput, errMsg string, status int) error {
	data := fiber.Map{
		"Title":     pf.Form.Title,
		"Form":      pf.Form,
		"Fields":    rendered,
		"Core":      core,
		"Key":       c.Params("key"),
		"Error":     errMsg,
		"CsrfToken": c.Locals("csrf"),
	}
	return c.Status(status).Render("public/form", data, publicLayout)
}

func (h *LinkHandler) formLoadError(c *fiber.Ctx, key string, err error) error {
	if errors.Is(err, services.ErrFormNotFound) {
		return h.renderNotFound(c, "Form Bulunamadı")
	}
	configslog.Log.Error("Public form yüklenemedi", zap.String("key", key), zap.Error(err))
	return h.renderError(c, "Form yüklenirken bir sorun oluştu.")
}

// ShowForm public tanıklık formunu gösterir.
func (h *LinkHandler) ShowForm(c *fiber.Ctx) error {
	key := c.Params("key")
	if !validKey(key) {
		return h.renderNotFound(c, "Form Bulunamadı")
	}
	pf, err := h.submissionService.LoadPublicForm(c.UserContext(), key)
	if err != nil {
		return h.formLoadError(c, key, err)
	}
	return h.renderForm(c, pf, pf.Rendered, formschema.CoreInput{Rating: services.DefaultRating}, "", http.StatusOK)
}

// requestValues gönderilen form alanlarını (urlencoded veya multipart) okur.
func requestValues(c *fiber.Ctx) formschema.MapLookup {
	values := formschema.MapLookup{}
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for k, v := range form.Value {
			values[k] = append([]string(nil), v...)
		}
		return values
	}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		values[string(k)] = append(values[string(k)], string(v))
	})
	return values
}

func parseRating(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return n
}

// SubmitForm tanıklığı doğrular ve kaydeder. Hata durumunda form girilen değerlerle tekrar gösterilir.
func (h *LinkHandler) SubmitForm(c *fiber.Ctx) error {
	key := c.Params("key")
	if !validKey(key) {
		return h.renderNotFound(c, "Form Bulunamadı")
	}
	values := requestValues(c)
	first := func(name string) string {
		v, _ := values.Value(name)
		return v
	}
	core := formschema.CoreInput{
		Name:     first("name"),
		Email:    first("email"),
		Company:  first("company"),
		Content:  first("content"),
		Rating:   parseRating(first("rating")),
		ImageURL: first("image_url"),
		VideoURL: first("video_url"),
	}

	t, err := h.submissionService.Submit(c.UserContext(), key, services.SubmissionInput{Core: core, Answers: values})
	if err == nil {
		return c.Render("public/thanks", fiber.Map{
			"Title":   "Teşekkürler",
			"Pending": t.Status == models.TestimonialStatusPending,
		}, publicLayout)
	}

	if errors.Is(err, services.ErrFormNotFound) {
		return h.renderNotFound(c, "Form Bulunamadı")
	}
	pf, loadErr := h.submissionService.LoadPublicForm(c.UserContext(), key)
	if loadErr != nil {
		return h.formLoadError(c, key, loadErr)
	}
	rendered := h.submissionService.Render(pf.Fields, values)
	if services.IsValidationError(err) {
		return h.renderForm(c, pf, rendered, core, err.Error(), http.StatusUnprocessableEntity)
	}
	return h.renderForm(c, pf, rendered, core, services.ErrSubmissionFailed.Error(), http.StatusInternalServerError)
}

// UploadMedia tek bir görsel veya videoyu yükler ve {"publicUrl": ...} döndürür.
func (h *LinkHandler) UploadMedia(c *fiber.Ctx) error {
	key := c.Params("key")
	if !validKey(key) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": services.ErrFormNotFound.Error()})
	}
	kind, err := services.ParseMediaKind(c.Query("kind", c.FormValue("kind")))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "dosya bulunamadı"})
	}
	url, err := h.upload(c, key, kind, fh)
	if err != nil {
		return c.Status(uploadStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"publicUrl": url})
}

func (h *LinkHandler) upload(c *fiber.Ctx, key string, kind services.MediaKind, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", services.ErrUploadFailed
	}
	defer f.Close()
	return h.submissionService.UploadMedia(c.UserContext(), key, services.UploadInput{
		Kind:        kind,
		FileName:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	})
}

func uploadStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrFormNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrUploadTooLarge):
		return fiber.StatusRequestEntityTooLarge
	case errors.Is(err, services.ErrUploadBadKind), errors.Is(err, services.ErrUploadContentType),
		errors.Is(err, services.ErrUploadVideoBlocked):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// ShowWall hesabın public duvarını gösterir.
func (h *LinkHandler) ShowWall(c *fiber.Ctx) error {
	key := c.Params("key")
	wall, err := h.testimonialService.WallByKey(c.UserContext(), key)
	if err != nil {
		if errors.Is(err, services.ErrWallNotFound) {
			return h.renderNotFound(c, "Sayfa Bulunamadı")
		}
		configslog.Log.Error("Public duvar yüklenemedi", zap.String("key", key), zap.Error(err))
		return h.renderError(c, "Sayfa yüklenirken bir sorun oluştu.")
	}
	return c.Render("public/wall", fiber.Map{
		"Title":        "Wall of Love",
		"Settings":     wall.Settings,
		"Testimonials": wall.Testimonials,
	}, publicLayout)
}
