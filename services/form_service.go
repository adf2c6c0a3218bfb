package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wallof.love/configs/configslog"
	"wallof.love/models"
	"wallof.love/pkg/queryparams"
	"wallof.love/repositories"

	"go.uber.org/zap"
)

// FormServiceError özel servis hataları
type FormServiceError string

func (e FormServiceError) Error() string { return string(e) }

const (
	ErrFormNotFound         FormServiceError = "form bulunamadı"
	ErrFormCreationFailed   FormServiceError = "form oluşturulamadı"
	ErrFormUpdateFailed     FormServiceError = "form güncellenemedi"
	ErrFormDeletionFailed   FormServiceError = "form silinemedi"
	ErrFormForbidden        FormServiceError = "bu işlem için yetkiniz yok"
	ErrFormInvalidInput     FormServiceError = "geçersiz girdi verisi"
	ErrFormTitleRequired    FormServiceError = "form başlığı zorunludur"
	ErrFormLinkCreationFail FormServiceError = "form için link oluşturulamadı"
	ErrFormLinkDeletionFail FormServiceError = "form linki silinemedi"
	ErrFormTitleTooLong     FormServiceError = "form başlığı en fazla 255 karakter olabilir"
)

// FormInput panelden gelen form bilgileri.
type FormInput struct {
	Title           string
	Description     string
	RequireApproval bool
	AllowVideo      bool
	IsActive        bool
	BrandColor      string
	CompanyName     string
	CompanyLogo     string
}

// DefaultFormInput yeni form ekranının başlangıç değerleri.
func DefaultFormInput() FormInput {
	return FormInput{RequireApproval: true, AllowVideo: true, IsActive: true}
}

// ValidateFormInput temel validasyonları yapar.
func ValidateFormInput(in FormInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrFormTitleRequired
	}
	if len([]rune(in.Title)) > 255 {
		return ErrFormTitleTooLong
	}
	if err := ValidateBrandColor(in.BrandColor); err != nil {
		return err
	}
	return validateLogoURL(in.CompanyLogo)
}

// IFormService form işlemleri için arayüz.
type IFormService interface {
	CreateForm(ctx context.Context, userID uint, in FormInput) (*models.Form, error)
	GetFormByID(ctx context.Context, id, requestingUserID uint) (*models.Form, error)
	GetFormByKey(ctx context.Context, key string) (*models.Form, error)
	GetFormsForUser(ctx context.Context, userID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error)
	UpdateForm(ctx context.Context, id, updatingUserID uint, in FormInput) error
	DeleteForm(ctx context.Context, id, deletingUserID uint) error
}

// FormService IFormService arayüzünü uygular.
type FormService struct {
	repo        repositories.IFormRepository
	linkService ILinkService
	typeService ITypeService
	settings    ISettingsService
	tx          repositories.ITransactor
}

// NewFormService yeni bir FormService örneği oluşturur.
func NewFormService() IFormService {
	return NewFormServiceWith(
		repositories.NewFormRepository(),
		NewLinkService(),
		NewTypeService(),
		NewSettingsService(),
		repositories.NewTransactor(),
	)
}

// NewFormServiceWith bağımlılıkları dışarıdan alır.
func NewFormServiceWith(repo repositories.IFormRepository, linkService ILinkService, typeService ITypeService,
	settings ISettingsService, tx repositories.ITransactor) *FormService {
	return &FormService{repo: repo, linkService: linkService, typeService: typeService, settings: settings, tx: tx}
}

func applyFormInput(form *models.Form, in FormInput) {
	form.Title = strings.TrimSpace(in.Title)
	form.Description = strings.TrimSpace(in.Description)
	form.RequireApproval = in.RequireApproval
	form.AllowVideo = in.AllowVideo
	form.IsActive = in.IsActive
	form.BrandColor = strings.TrimSpace(in.BrandColor)
	form.CompanyName = strings.TrimSpace(in.CompanyName)
	form.CompanyLogo = strings.TrimSpace(in.CompanyLogo)
}

// CreateForm formu ve public FORM linkini tek transaction içinde oluşturur.
// Marka alanları boşsa hesap ayarlarından (yoksa varsayılanlardan) doldurulur.
func (s *FormService) CreateForm(ctx context.Context, userID uint, in FormInput) (*models.Form, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: geçersiz kullanıcı ID", ErrFormInvalidInput)
	}
	if err := ValidateFormInput(in); err != nil {
		return nil, err
	}

	form := &models.Form{UserID: userID}
	applyFormInput(form, in)

	if settings, err := s.settings.GetSettings(ctx, userID); err == nil {
		if form.BrandColor == "" {
			form.BrandColor = settings.BrandColor
		}
		if form.CompanyName == "" {
			form.CompanyName = settings.CompanyName
		}
		if form.CompanyLogo == "" {
			form.CompanyLogo = settings.CompanyLogo
		}
	}
	if form.BrandColor == "" {
		form.BrandColor = models.DefaultBrandColor
	}

	formType, err := s.typeService.GetTypeByName(ctx, models.TypeNameForm)
	if err != nil {
		return nil, err
	}

	ctx = models.WithUserID(ctx, userID)
	txErr := s.tx.Transaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, form); err != nil {
			configslog.Log.Error("Form oluşturulamadı", zap.Uint("userID", userID), zap.Error(err))
			return ErrFormCreationFailed
		}
		link, err := s.linkService.CreateLink(ctx, userID, formType.ID, form.ID)
		if err != nil {
			return ErrFormLinkCreationFail
		}
		if err := s.repo.AttachLink(ctx, form.ID, link.ID); err != nil {
			return ErrFormLinkCreationFail
		}
		link.Type = *formType
		form.LinkID = &link.ID
		form.Link = link
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	configslog.SLog.Infof("Form oluşturuldu: ID %d, Başlık: %s, LinkKey: %s", form.ID, form.Title, form.PublicKey())
	return form, nil
}

// GetFormByID formu sahiplik kontrolüyle getirir.
func (s *FormService) GetFormByID(ctx context.Context, id, requestingUserID uint) (*models.Form, error) {
	if id == 0 {
		return nil, ErrFormNotFound
	}
	form, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	if form.UserID != requestingUserID {
		return nil, ErrFormForbidden
	}
	return form, nil
}

// GetFormByKey public link anahtarı ile formu getirir. Pasif formlar bulunamadı sayılır.
func (s *FormService) GetFormByKey(ctx context.Context, key string) (*models.Form, error) {
	if key == "" {
		return nil, ErrFormNotFound
	}
	link, err := s.linkService.GetLinkByKey(ctx, key)
	if err != nil {
		if errors.Is(err, ErrLinkNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	if link.Type.Name != models.TypeNameForm {
		return nil, ErrFormNotFound
	}
	form, err := s.repo.FindByID(ctx, link.TargetID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Warn("Link hedefi olan form bulunamadı", zap.String("key", key), zap.Uint("target_id", link.TargetID))
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	if !form.IsActive {
		return nil, ErrFormNotFound
	}
	return form, nil
}

// GetFormsForUser kullanıcının formlarını sayfalayarak getirir.
func (s *FormService) GetFormsForUser(ctx context.Context, userID uint, params queryparams.ListParams) (*queryparams.PaginatedResult, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: geçersiz kullanıcı ID", ErrFormInvalidInput)
	}
	params.Validate()
	forms, total, err := s.repo.FindAllByUserIDPaginated(ctx, userID, params)
	if err != nil {
		return nil, err
	}
	return queryparams.NewPaginatedResult(forms, total, params), nil
}

// UpdateForm formun düzenlenebilir alanlarını günceller.
func (s *FormService) UpdateForm(ctx context.Context, id, updatingUserID uint, in FormInput) error {
	if err := ValidateFormInput(in); err != nil {
		return err
	}
	ctx = models.WithUserID(ctx, updatingUserID)
	txErr := s.tx.Transaction(ctx, func(ctx context.Context) error {
		form, err := s.repo.LockForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrFormNotFound
			}
			return err
		}
		if form.UserID != updatingUserID {
			return ErrFormForbidden
		}
		applyFormInput(form, in)
		if form.BrandColor == "" {
			form.BrandColor = models.DefaultBrandColor
		}
		if err := s.repo.Update(ctx, form); err != nil {
			configslog.Log.Error("Form güncellenemedi", zap.Uint("id", id), zap.Error(err))
			return ErrFormUpdateFailed
		}
		return nil
	})
	if txErr != nil {
		return txErr
	}
	configslog.SLog.Infof("Form güncellendi: ID %d (Güncelleyen: %d)", id, updatingUserID)
	return nil
}

// DeleteForm formu, alanlarını ve linkini siler. Gelen tanıklıklar silinmez.
func (s *FormService) DeleteForm(ctx context.Context, id, deletingUserID uint) error {
	if id == 0 || deletingUserID == 0 {
		return fmt.Errorf("%w: geçersiz ID veya silen kullanıcı ID", ErrFormInvalidInput)
	}
	ctx = models.WithUserID(ctx, deletingUserID)
	txErr := s.tx.Transaction(ctx, func(ctx context.Context) error {
		form, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrFormNotFound
			}
			return err
		}
		if form.UserID != deletingUserID {
			return ErrFormForbidden
		}
		if err := s.repo.Delete(ctx, form, deletingUserID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrFormNotFound
			}
			return ErrFormDeletionFailed
		}
		if form.LinkID != nil {
			if err := s.linkService.DeleteLink(ctx, deletingUserID, *form.LinkID); err != nil && !errors.Is(err, ErrLinkNotFound) {
				return ErrFormLinkDeletionFail
			}
		}
		return nil
	})
	if txErr != nil {
		configslog.Log.Error("DeleteForm transaction failed", zap.Uint("id", id), zap.Uint("userID", deletingUserID), zap.Error(txErr))
		return txErr
	}
	configslog.SLog.Infof("Form ve linki silindi: Form ID %d (Silen: %d)", id, deletingUserID)
	return nil
}

var _ IFormService = (*FormService)(nil)
