package services

import (
	"context"
	"errors"
	"strings"

	"wallof.love/configs/configslog"
	"wallof.love/models"
	"wallof.love/pkg/formschema"
	"wallof.love/repositories"

	"go.uber.org/zap"
)

// FieldServiceError özel servis hataları
type FieldServiceError string

func (e FieldServiceError) Error() string { return string(e) }

const (
	ErrFieldNotFound       FieldServiceError = "alan bulunamadı"
	ErrFieldCreationFailed FieldServiceError = "alan eklenemedi"
	ErrFieldUpdateFailed   FieldServiceError = "alan güncellenemedi"
	ErrFieldDeletionFailed FieldServiceError = "alan silinemedi"
	ErrFieldMoveFailed     FieldServiceError = "alan taşınamadı"
)

// FieldInput yeni alan tanımı.
type FieldInput struct {
	FieldType   string
	Label       string
	Placeholder string
	Required    bool
	Options     []string
}

// FieldPatch kısmi güncellemedir; nil alanlara dokunulmaz.
// Options verilirse önceki liste tamamen değiştirilir.
type FieldPatch struct {
	FieldType   *string
	Label       *string
	Placeholder *string
	Required    *bool
	Options     *[]string
}

// IFormFieldService form şeması yönetimi için arayüz.
type IFormFieldService interface {
	AddField(ctx context.Context, userID, formID uint, in FieldInput) (*models.FormField, error)
	UpdateField(ctx context.Context, userID, fieldID uint, patch FieldPatch) (*models.FormField, error)
	DeleteField(ctx context.Context, userID, fieldID uint) error
	MoveField(ctx context.Context, userID, fieldID uint, dir formschema.Direction) ([]models.FormField, error)
	ListFields(ctx context.Context, userID, formID uint) ([]models.FormField, error)
}

// FormFieldService IFormFieldService arayüzünü uygular.
type FormFieldService struct {
	repo     repositories.IFormFieldRepository
	formRepo repositories.IFormRepository
	tx       repositories.ITransactor
}

func NewFormFieldService() IFormFieldService {
	return NewFormFieldServiceWith(repositories.NewFormFieldRepository(), repositories.NewFormRepository(), repositories.NewTransactor())
}

func NewFormFieldServiceWith(repo repositories.IFormFieldRepository, formRepo repositories.IFormRepository, tx repositories.ITransactor) *FormFieldService {
	return &FormFieldService{repo: repo, formRepo: formRepo, tx: tx}
}

// lockOwnedForm formu kilitleyerek okur ve sahipliği doğrular.
func (s *FormFieldService) lockOwnedForm(ctx context.Context, formID, userID uint) (*models.Form, error) {
	form, err := s.formRepo.LockForUpdate(ctx, formID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	if form.UserID != userID {
		return nil, ErrFormForbidden
	}
	return form, nil
}

func (s *FormFieldService) findField(ctx context.Context, fieldID uint) (*models.FormField, error) {
	field, err := s.repo.FindByID(ctx, fieldID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, err
	}
	return field, nil
}

// AddField alanı listenin sonuna ekler: order_index = max+1 (boşsa 0).
// Boş etiket veya bilinmeyen tip formschema.Rejection ile reddedilir.
func (s *FormFieldService) AddField(ctx context.Context, userID, formID uint, in FieldInput) (*models.FormField, error) {
	label := strings.TrimSpace(in.Label)
	if label == "" {
		return nil, formschema.ErrBlankLabel
	}
	fieldType, ok := formschema.ParseFieldType(in.FieldType)
	if !ok {
		return nil, formschema.ErrUnknownType
	}

	field := &models.FormField{
		FormID:      formID,
		FieldType:   string(fieldType),
		Label:       label,
		Placeholder: strings.TrimSpace(in.Placeholder),
		Required:    in.Required,
	}
	if fieldType.HasOptions() {
		field.Options = formschema.CleanOptions(in.Options)
	}

	ctx = models.WithUserID(ctx, userID)
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		if _, err := s.lockOwnedForm(ctx, formID, userID); err != nil {
			return err
		}
		existing, err := s.repo.FindByFormID(ctx, formID)
		if err != nil {
			return err
		}
		field.OrderIndex = formschema.NextOrderIndex(existing)
		if err := s.repo.Create(ctx, field); err != nil {
			configslog.Log.Error("Form alanı eklenemedi", zap.Uint("form_id", formID), zap.Error(err))
			return ErrFieldCreationFailed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return field, nil
}

// UpdateField verilen öznitelikleri uygular, order_index'e dokunmaz.
func (s *FormFieldService) UpdateField(ctx context.Context, userID, fieldID uint, patch FieldPatch) (*models.FormField, error) {
	var columns []string
	var field *models.FormField

	ctx = models.WithUserID(ctx, userID)
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		field, err = s.findField(ctx, fieldID)
		if err != nil {
			return err
		}
		if _, err := s.lockOwnedForm(ctx, field.FormID, userID); err != nil {
			return err
		}

		if patch.Label != nil {
			label := strings.TrimSpace(*patch.Label)
			if label == "" {
				return formschema.ErrBlankLabel
			}
			field.Label = label
			columns = append(columns, "label")
		}
		if patch.FieldType != nil {
			t, ok := formschema.ParseFieldType(*patch.FieldType)
			if !ok {
				return formschema.ErrUnknownType
			}
			field.FieldType = string(t)
			columns = append(columns, "field_type")
		}
		if patch.Placeholder != nil {
			field.Placeholder = strings.TrimSpace(*patch.Placeholder)
			columns = append(columns, "placeholder")
		}
		if patch.Required != nil {
			field.Required = *patch.Required
			columns = append(columns, "required")
		}
		if patch.Options != nil {
			field.Options = formschema.CleanOptions(*patch.Options)
			columns = append(columns, "options")
		}
		if len(columns) == 0 {
			return nil
		}
		if err := s.repo.Update(ctx, field, columns...); err != nil {
			configslog.Log.Error("Form alanı güncellenemedi", zap.Uint("field_id", fieldID), zap.Error(err))
			return ErrFieldUpdateFailed
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return field, nil
}

// DeleteField alanı siler; kalan alanlar yeniden numaralanmaz.
func (s *FormFieldService) DeleteField(ctx context.Context, userID, fieldID uint) error {
	ctx = models.WithUserID(ctx, userID)
	return s.tx.Transaction(ctx, func(ctx context.Context) error {
		field, err := s.findField(ctx, fieldID)
		if err != nil {
			return err
		}
		if _, err := s.lockOwnedForm(ctx, field.FormID, userID); err != nil {
			return err
		}
		if err := s.repo.Delete(ctx, fieldID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrFieldNotFound
			}
			configslog.Log.Error("Form alanı silinemedi", zap.Uint("field_id", fieldID), zap.Error(err))
			return ErrFieldDeletionFailed
		}
		return nil
	})
}

// MoveField alanı komşusuyla yer değiştirir ve tüm alanlara 0..N-1 sırasını yazar.
// Form satırı kilitlendiği için aynı form üzerindeki eşzamanlı taşımalar sırayla uygulanır;
// bir yazma başarısız olursa hiçbir değişiklik kalıcı olmaz.
func (s *FormFieldService) MoveField(ctx context.Context, userID, fieldID uint, dir formschema.Direction) ([]models.FormField, error) {
	var reordered []models.FormField

	ctx = models.WithUserID(ctx, userID)
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		field, err := s.findField(ctx, fieldID)
		if err != nil {
			return err
		}
		if _, err := s.lockOwnedForm(ctx, field.FormID, userID); err != nil {
			return err
		}
		fields, err := s.repo.FindByFormID(ctx, field.FormID)
		if err != nil {
			return err
		}
		reordered, err = formschema.Move(fields, fieldID, dir)
		if err != nil {
			return err
		}
		for _, f := range reordered {
			if err := s.repo.UpdateOrderIndex(ctx, f.ID, f.OrderIndex); err != nil {
				configslog.Log.Error("Alan sırası yazılamadı", zap.Uint("field_id", f.ID), zap.Error(err))
				return ErrFieldMoveFailed
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reordered, nil
}

// ListFields alanları görüntüleme sırasında döndürür.
func (s *FormFieldService) ListFields(ctx context.Context, userID, formID uint) ([]models.FormField, error) {
	form, err := s.formRepo.FindByID(ctx, formID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	if form.UserID != userID {
		return nil, ErrFormForbidden
	}
	fields, err := s.repo.FindByFormID(ctx, formID)
	if err != nil {
		return nil, err
	}
	formschema.SortFields(fields)
	return fields, nil
}

var _ IFormFieldService = (*FormFieldService)(nil)
