package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"wallof.love/configs/configslog"
	"wallof.love/models"
	"wallof.love/pkg/formschema"
	"wallof.love/repositories"

	"go.uber.org/zap"
)

// SubmissionServiceError özel servis hataları
type SubmissionServiceError string

func (e SubmissionServiceError) Error() string { return string(e) }

const (
	ErrSubmissionFailed SubmissionServiceError = "tanıklığınız gönderilemedi, lütfen tekrar deneyin"
)

// DefaultRating puan gönderilmediğinde kullanılır.
const DefaultRating = 5

// PublicForm public form sayfası için gereken her şey.
type PublicForm struct {
	Form     *models.Form
	Fields   []models.FormField
	Rendered []formschema.RenderedField
}

// SubmissionInput public formdan gelen gönderim.
type SubmissionInput struct {
	Core    formschema.CoreInput
	Answers formschema.ValueLookup
}

// ISubmissionService public form gönderim hattı için arayüz.
type ISubmissionService interface {
	LoadPublicForm(ctx context.Context, key string) (*PublicForm, error)
	// Render önceki cevaplarla (hata sonrası) alanları yeniden üretir.
	Render(fields []models.FormField, lookup formschema.ValueLookup) []formschema.RenderedField
	Submit(ctx context.Context, key string, in SubmissionInput) (*models.Testimonial, error)
	UploadMedia(ctx context.Context, key string, in UploadInput) (string, error)
}

// SubmissionService ISubmissionService arayüzünü uygular.
type SubmissionService struct {
	forms       IFormService
	fieldRepo   repositories.IFormFieldRepository
	testimonial repositories.ITestimonialRepository
	storage     IStorageService
	now         func() time.Time
}

func NewSubmissionService() ISubmissionService {
	return NewSubmissionServiceWith(NewFormService(), repositories.NewFormFieldRepository(),
		repositories.NewTestimonialRepository(), NewStorageService())
}

func NewSubmissionServiceWith(forms IFormService, fieldRepo repositories.IFormFieldRepository,
	testimonial repositories.ITestimonialRepository, storage IStorageService) *SubmissionService {
	return &SubmissionService{forms: forms, fieldRepo: fieldRepo, testimonial: testimonial, storage: storage, now: time.Now}
}

// LoadPublicForm formu, sıralı alanlarını ve render edilmiş girdilerini yükler.
func (s *SubmissionService) LoadPublicForm(ctx context.Context, key string) (*PublicForm, error) {
	form, err := s.forms.GetFormByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	fields, err := s.fieldRepo.FindByFormID(ctx, form.ID)
	if err != nil {
		configslog.Log.Error("Public form alanları yüklenemedi", zap.Uint("form_id", form.ID), zap.Error(err))
		return nil, err
	}
	formschema.SortFields(fields)
	if form.BrandColor == "" {
		form.BrandColor = models.DefaultBrandColor
	}
	return &PublicForm{
		Form:     form,
		Fields:   fields,
		Rendered: formschema.Render(fields, nil),
	}, nil
}

func (s *SubmissionService) Render(fields []models.FormField, lookup formschema.ValueLookup) []formschema.RenderedField {
	answers := map[string]any{}
	if lookup != nil {
		// Hatalı değerler de tekrar gösterilsin diye ham değerler kullanılır.
		for _, f := range fields {
			name := formschema.InputName(f.ID)
			if formschema.FieldType(f.FieldType) == formschema.FieldCheckbox {
				if vs := lookup.Values(name); len(vs) > 0 {
					answers[formschema.AnswerKey(f.ID)] = vs
				}
				continue
			}
			if v, ok := lookup.Value(name); ok {
				answers[formschema.AnswerKey(f.ID)] = v
			}
		}
	}
	return formschema.Render(fields, answers)
}

func normalizeCore(in formschema.CoreInput, allowVideo bool) formschema.CoreInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Company = strings.TrimSpace(in.Company)
	in.Content = strings.TrimSpace(in.Content)
	in.ImageURL = strings.TrimSpace(in.ImageURL)
	in.VideoURL = strings.TrimSpace(in.VideoURL)
	if in.Rating == 0 {
		in.Rating = DefaultRating
	}
	if !allowVideo {
		in.VideoURL = ""
	}
	return in
}

// Submit gönderimi doğrular ve tek bir kayıt olarak yazar.
// Sıra: yerleşik alanlar, özel alanlar (görüntüleme sırasında), birleştirme, kayıt. Doğrulama hatasında
// hiçbir yazma yapılmaz ve *formschema.ValidationError döner.
func (s *SubmissionService) Submit(ctx context.Context, key string, in SubmissionInput) (*models.Testimonial, error) {
	form, err := s.forms.GetFormByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	fields, err := s.fieldRepo.FindByFormID(ctx, form.ID)
	if err != nil {
		configslog.Log.Error("Gönderim için form alanları yüklenemedi", zap.Uint("form_id", form.ID), zap.Error(err))
		return nil, ErrSubmissionFailed
	}

	core := normalizeCore(in.Core, form.AllowVideo)
	if err := formschema.ValidateCore(core); err != nil {
		return nil, err
	}

	lookup := in.Answers
	if lookup == nil {
		lookup = formschema.MapLookup{}
	}
	answers := formschema.ExtractAnswers(fields, lookup)
	if err := formschema.ValidateCustom(fields, answers); err != nil {
		return nil, err
	}

	t := AssembleTestimonial(form, core, answers, s.now().UTC())
	if err := s.testimonial.Create(ctx, t); err != nil {
		configslog.Log.Error("Tanıklık kaydedilemedi", zap.Uint("form_id", form.ID), zap.Error(err))
		return nil, ErrSubmissionFailed
	}
	configslog.Log.Info("Yeni tanıklık alındı",
		zap.Uint("form_id", form.ID), zap.Uint("testimonial_id", t.ID), zap.String("status", string(t.Status)))
	return t, nil
}

// AssembleTestimonial yerleşik alanları ve tanımlı özel cevapları tek kayıtta birleştirir.
// Durum formun moderasyon politikasından gelir; created_at ve updated_at aynıdır.
func AssembleTestimonial(form *models.Form, core formschema.CoreInput, answers map[string]any, at time.Time) *models.Testimonial {
	status := models.TestimonialStatusApproved
	if form.RequireApproval {
		status = models.TestimonialStatusPending
	}
	custom := make(map[string]any, len(answers))
	for k, v := range answers {
		if v != nil {
			custom[k] = v
		}
	}
	return &models.Testimonial{
		FormID:       form.ID,
		UserID:       form.UserID,
		Name:         core.Name,
		Email:        core.Email,
		Company:      core.Company,
		Rating:       core.Rating,
		Content:      core.Content,
		ImageURL:     core.ImageURL,
		VideoURL:     core.VideoURL,
		CustomFields: custom,
		Status:       status,
		CreatedAt:    at,
		UpdatedAt:    at,
	}
}

// UploadMedia form video kabul etmiyorsa video yüklemesini reddeder.
func (s *SubmissionService) UploadMedia(ctx context.Context, key string, in UploadInput) (string, error) {
	form, err := s.forms.GetFormByKey(ctx, key)
	if err != nil {
		return "", err
	}
	if in.Kind == MediaVideo && !form.AllowVideo {
		return "", ErrUploadVideoBlocked
	}
	return s.storage.UploadMedia(ctx, in)
}

// IsValidationError hatanın kullanıcıya gösterilecek bir doğrulama hatası olup olmadığını söyler.
func IsValidationError(err error) bool {
	var ve *formschema.ValidationError
	return errors.As(err, &ve)
}

var _ ISubmissionService = (*SubmissionService)(nil)
