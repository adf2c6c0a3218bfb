package repositories

import (
	"context"
	"errors"

	"wallof.love/configs"
	"wallof.love/configs/configslog"
	"wallof.love/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IFormFieldRepository özel form alanları için arayüz.
type IFormFieldRepository interface {
	Create(ctx context.Context, field *models.FormField) error
	FindByID(ctx context.Context, id uint) (*models.FormField, error)
	FindByFormID(ctx context.Context, formID uint) ([]models.FormField, error)
	Update(ctx context.Context, field *models.FormField, columns ...string) error
	UpdateOrderIndex(ctx context.Context, id uint, orderIndex int) error
	Delete(ctx context.Context, id uint) error
}

// FormFieldRepository IFormFieldRepository arayüzünü uygular.
type FormFieldRepository struct {
	db *gorm.DB
}

func NewFormFieldRepository() IFormFieldRepository {
	return &FormFieldRepository{db: configs.GetDB()}
}

func NewFormFieldRepositoryTx(tx *gorm.DB) IFormFieldRepository {
	return &FormFieldRepository{db: tx}
}

func (r *FormFieldRepository) Create(ctx context.Context, field *models.FormField) error {
	if field == nil || field.FormID == 0 {
		return errors.New("forma bağlı olmayan alan oluşturulamaz")
	}
	return dbFromContext(ctx, r.db).Create(field).Error
}

func (r *FormFieldRepository) FindByID(ctx context.Context, id uint) (*models.FormField, error) {
	var field models.FormField
	if err := dbFromContext(ctx, r.db).First(&field, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &field, nil
}

// FindByFormID alanları order_index, eşitlikte oluşturulma sırasına göre döndürür.
func (r *FormFieldRepository) FindByFormID(ctx context.Context, formID uint) ([]models.FormField, error) {
	var fields []models.FormField
	err := dbFromContext(ctx, r.db).Where("form_id = ?", formID).
		Order("order_index asc").Order("id asc").Find(&fields).Error
	if err != nil {
		configslog.Log.Error("FormFieldRepository.FindByFormID: DB error", zap.Uint("form_id", formID), zap.Error(err))
		return nil, err
	}
	return fields, nil
}

// Update yalnızca verilen kolonları yazar; order_index listede yoksa dokunulmaz.
func (r *FormFieldRepository) Update(ctx context.Context, field *models.FormField, columns ...string) error {
	if field == nil || field.ID == 0 {
		return errors.New("güncellenecek alan geçerli değil")
	}
	if len(columns) == 0 {
		return nil
	}
	selected := append([]string{"updated_at", "updated_by"}, columns...)
	result := dbFromContext(ctx, r.db).Model(field).Select(selected).Updates(field)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateOrderIndex tek bir alanın sırasını yazar.
func (r *FormFieldRepository) UpdateOrderIndex(ctx context.Context, id uint, orderIndex int) error {
	result := dbFromContext(ctx, r.db).Model(&models.FormField{}).Where("id = ?", id).
		UpdateColumn("order_index", orderIndex)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete alanı siler. Kalan alanların sırası yeniden numaralanmaz.
func (r *FormFieldRepository) Delete(ctx context.Context, id uint) error {
	result := dbFromContext(ctx, r.db).Delete(&models.FormField{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IFormFieldRepository = (*FormFieldRepository)(nil)
