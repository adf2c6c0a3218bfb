package repositories

import (
	"context"
	"errors"

	"wallof.love/configs"
	"wallof.love/configs/configslog"
	"wallof.love/models"
	"wallof.love/models/helpers"
	"wallof.love/pkg/queryparams"
	"wallof.love/pkg/textsearch"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IFormRepository form veritabanı işlemleri için arayüz.
type IFormRepository interface {
	Create(ctx context.Context, form *models.Form) error
	FindByID(ctx context.Context, id uint) (*models.Form, error)
	FindByLinkID(ctx context.Context, linkID uint) (*models.Form, error)
	FindAllByUserIDPaginated(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Form, int64, error)
	LockForUpdate(ctx context.Context, id uint) (*models.Form, error)
	Update(ctx context.Context, form *models.Form) error
	AttachLink(ctx context.Context, formID, linkID uint) error
	Delete(ctx context.Context, form *models.Form, deletedByUserID uint) error
	CountByUserID(ctx context.Context, userID uint) (int64, error)
}

// FormRepository IFormRepository arayüzünü uygular.
type FormRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Form]
}

var formSortColumns = []string{"id", "created_at", "title", "is_active"}

// NewFormRepository yeni bir FormRepository örneği oluşturur.
func NewFormRepository() IFormRepository {
	return NewFormRepositoryTx(configs.GetDB())
}

// NewFormRepositoryTx transaction (veya test bağlantısı) ile çalışan repository.
func NewFormRepositoryTx(tx *gorm.DB) IFormRepository {
	base := NewBaseRepository[models.Form](tx)
	base.SetAllowedSortColumns(formSortColumns)
	return &FormRepository{db: tx, base: base}
}

// Create yeni bir form oluşturur.
func (r *FormRepository) Create(ctx context.Context, form *models.Form) error {
	if form == nil || form.UserID == 0 {
		return errors.New("sahibi olmayan form oluşturulamaz")
	}
	return r.base.Create(ctx, form)
}

// FindByID formu link bilgisiyle getirir.
func (r *FormRepository) FindByID(ctx context.Context, id uint) (*models.Form, error) {
	if id == 0 {
		return nil, errors.New("geçersiz Form ID")
	}
	var form models.Form
	err := dbFromContext(ctx, r.db).Preload("Link.Type").First(&form, id).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			configslog.Log.Error("FormRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		}
		return nil, translateNotFound(err)
	}
	return &form, nil
}

// FindByLinkID public linke bağlı formu getirir.
func (r *FormRepository) FindByLinkID(ctx context.Context, linkID uint) (*models.Form, error) {
	if linkID == 0 {
		return nil, errors.New("geçersiz Link ID")
	}
	var form models.Form
	err := dbFromContext(ctx, r.db).Preload("Link.Type").Where("link_id = ?", linkID).First(&form).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			configslog.Log.Error("FormRepository.FindByLinkID: DB error", zap.Uint("link_id", linkID), zap.Error(err))
		}
		return nil, translateNotFound(err)
	}
	return &form, nil
}

// applyFormFilters başlık araması ve aktiflik filtresini uygular.
func applyFormFilters(query *gorm.DB, params queryparams.ListParams) *gorm.DB {
	if params.Name != "" {
		sqlFragment, args := textsearch.SQLFilter("forms.title", params.Name)
		query = query.Where(sqlFragment, args...)
	}
	switch params.Status {
	case "active":
		query = query.Where("forms.is_active = ?", helpers.Flag(true))
	case "inactive":
		query = query.Where("forms.is_active = ?", helpers.Flag(false))
	}
	return query
}

// FindAllByUserIDPaginated kullanıcının formlarını sayfalayarak bulur.
func (r *FormRepository) FindAllByUserIDPaginated(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Form, int64, error) {
	if userID == 0 {
		return nil, 0, errors.New("geçersiz kullanıcı ID")
	}
	var forms []models.Form
	var totalCount int64

	query := dbFromContext(ctx, r.db).Model(&models.Form{}).Where("forms.user_id = ?", userID)
	query = applyFormFilters(query, params)

	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("FormRepository.Count (Paginated by User): DB error", zap.Uint("userID", userID), zap.Error(err))
		return nil, 0, err
	}
	if totalCount == 0 {
		return forms, 0, nil
	}

	query = r.base.ApplySort(query, params, "created_at")
	err := query.Preload("Link").Limit(params.PerPage).Offset(params.CalculateOffset()).Find(&forms).Error
	if err != nil {
		configslog.Log.Error("FormRepository.Find (Paginated by User): DB error", zap.Uint("userID", userID), zap.Error(err))
		return nil, totalCount, err
	}
	return forms, totalCount, nil
}

// LockForUpdate formu satır kilidiyle okur. Transaction içinde çağrılmalıdır;
// aynı form üzerindeki eşzamanlı alan sıralamalarını sıraya sokar.
func (r *FormRepository) LockForUpdate(ctx context.Context, id uint) (*models.Form, error) {
	var form models.Form
	err := dbFromContext(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).First(&form, id).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &form, nil
}

// Update düzenlenebilir form alanlarını yazar. Sıfır değerler (false, "") da yazılır.
func (r *FormRepository) Update(ctx context.Context, form *models.Form) error {
	if form == nil || form.ID == 0 {
		return errors.New("güncellenecek form geçerli değil")
	}
	result := dbFromContext(ctx, r.db).Model(form).
		Select("title", "description", "require_approval", "allow_video", "is_active",
			"brand_color", "company_name", "company_logo", "updated_at", "updated_by").
		Updates(form)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AttachLink form oluşturulduktan sonra link bağlantısını yazar.
func (r *FormRepository) AttachLink(ctx context.Context, formID, linkID uint) error {
	return dbFromContext(ctx, r.db).Model(&models.Form{}).Where("id = ?", formID).UpdateColumn("link_id", linkID).Error
}

// Delete formu ve alanlarını siler (soft delete). Gönderilmiş tanıklıklar korunur.
func (r *FormRepository) Delete(ctx context.Context, form *models.Form, deletedByUserID uint) error {
	if form == nil || form.ID == 0 {
		return errors.New("silinecek form geçerli değil")
	}
	return dbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("form_id = ?", form.ID).Delete(&models.FormField{}).Error; err != nil {
			configslog.Log.Error("FormRepository.Delete: alanlar silinemedi", zap.Uint("id", form.ID), zap.Error(err))
			return err
		}
		if err := tx.Model(form).UpdateColumn("deleted_by", deletedByUserID).Error; err != nil {
			return err
		}
		result := tx.Delete(form)
		if result.Error != nil {
			configslog.Log.Error("FormRepository.Delete: DB error", zap.Uint("id", form.ID), zap.Error(result.Error))
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// CountByUserID kullanıcıya ait form sayısını döndürür.
func (r *FormRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := dbFromContext(ctx, r.db).Model(&models.Form{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

var _ IFormRepository = (*FormRepository)(nil)
