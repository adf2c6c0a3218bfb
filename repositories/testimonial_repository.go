package repositories

import (
	"context"
	"errors"
	"time"

	"wallof.love/configs"
	"wallof.love/configs/configslog"
	"wallof.love/models"
	"wallof.love/pkg/queryparams"
	"wallof.love/pkg/textsearch"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrStatusConflict kayıt beklenen durumda değilken geçiş denendiğinde döner.
var ErrStatusConflict = errors.New("kayıt beklenen durumda değil")

// StatusCounts hesap başına durum sayılarıdır.
type StatusCounts struct {
	Pending  int64
	Approved int64
	Rejected int64
}

// Total tüm durumların toplamı.
func (s StatusCounts) Total() int64 { return s.Pending + s.Approved + s.Rejected }

// ITestimonialRepository tanıklık veritabanı işlemleri için arayüz.
type ITestimonialRepository interface {
	Create(ctx context.Context, t *models.Testimonial) error
	FindByID(ctx context.Context, id uint) (*models.Testimonial, error)
	FindByOwnerPaginated(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Testimonial, int64, error)
	FindApprovedByOwner(ctx context.Context, userID uint, limit int) ([]models.Testimonial, error)
	FindRecentByOwner(ctx context.Context, userID uint, limit int) ([]models.Testimonial, error)
	TransitionStatus(ctx context.Context, id, userID uint, from, to models.TestimonialStatus, at time.Time) error
	CountByStatus(ctx context.Context, userID uint) (StatusCounts, error)
	AverageRating(ctx context.Context, userID uint, status models.TestimonialStatus) (float64, int64, error)
}

// TestimonialRepository ITestimonialRepository arayüzünü uygular.
type TestimonialRepository struct {
	db   *gorm.DB
	base IBaseRepository[models.Testimonial]
}

func NewTestimonialRepository() ITestimonialRepository {
	return NewTestimonialRepositoryTx(configs.GetDB())
}

func NewTestimonialRepositoryTx(tx *gorm.DB) ITestimonialRepository {
	base := NewBaseRepository[models.Testimonial](tx)
	base.SetAllowedSortColumns([]string{"created_at", "rating", "name"})
	return &TestimonialRepository{db: tx, base: base}
}

// Create tanıklığı tek seferde yazar. Zaman damgaları çağıran tarafından verilir.
func (r *TestimonialRepository) Create(ctx context.Context, t *models.Testimonial) error {
	if t == nil || t.FormID == 0 || t.UserID == 0 {
		return errors.New("form veya sahibi olmayan tanıklık oluşturulamaz")
	}
	if !t.Status.IsValid() {
		return errors.New("geçersiz tanıklık durumu")
	}
	return r.base.Create(ctx, t)
}

func (r *TestimonialRepository) FindByID(ctx context.Context, id uint) (*models.Testimonial, error) {
	return r.base.FindByID(ctx, id)
}

// FindByOwnerPaginated hesaba gelen tanıklıkları durum ve metin filtresiyle listeler.
// params.Status boşsa veya "all" ise tüm durumlar döner.
func (r *TestimonialRepository) FindByOwnerPaginated(ctx context.Context, userID uint, params queryparams.ListParams) ([]models.Testimonial, int64, error) {
	var items []models.Testimonial
	var total int64

	query := dbFromContext(ctx, r.db).Model(&models.Testimonial{}).Where("user_id = ?", userID)
	if status := models.TestimonialStatus(params.Status); status.IsValid() {
		query = query.Where("status = ?", status)
	}
	if params.Name != "" {
		nameSQL, nameArgs := textsearch.SQLFilter("name", params.Name)
		contentSQL, contentArgs := textsearch.SQLFilter("content", params.Name)
		query = query.Where("("+nameSQL+" OR "+contentSQL+")", append(nameArgs, contentArgs...)...)
	}

	if err := query.Count(&total).Error; err != nil {
		configslog.Log.Error("TestimonialRepository.Count: DB error", zap.Uint("userID", userID), zap.Error(err))
		return nil, 0, err
	}
	if total == 0 {
		return items, 0, nil
	}
	query = r.base.ApplySort(query, params, "created_at")
	if err := query.Limit(params.PerPage).Offset(params.CalculateOffset()).Find(&items).Error; err != nil {
		configslog.Log.Error("TestimonialRepository.Find: DB error", zap.Uint("userID", userID), zap.Error(err))
		return nil, total, err
	}
	return items, total, nil
}

// FindApprovedByOwner duvar için sadece onaylı kayıtları, en yeniden başlayarak döndürür.
// limit <= 0 ise sınır uygulanmaz.
func (r *TestimonialRepository) FindApprovedByOwner(ctx context.Context, userID uint, limit int) ([]models.Testimonial, error) {
	var items []models.Testimonial
	query := dbFromContext(ctx, r.db).
		Where("user_id = ? AND status = ?", userID, models.TestimonialStatusApproved).
		Order("created_at desc").Order("id desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&items).Error; err != nil {
		configslog.Log.Error("TestimonialRepository.FindApprovedByOwner: DB error", zap.Uint("userID", userID), zap.Error(err))
		return nil, err
	}
	return items, nil
}

// FindRecentByOwner durumdan bağımsız son kayıtları döndürür.
func (r *TestimonialRepository) FindRecentByOwner(ctx context.Context, userID uint, limit int) ([]models.Testimonial, error) {
	var items []models.Testimonial
	err := dbFromContext(ctx, r.db).Where("user_id = ?", userID).
		Order("created_at desc").Order("id desc").Limit(limit).Find(&items).Error
	return items, err
}

// TransitionStatus durumu yalnızca kayıt sahibine aitse ve 'from' durumundaysa değiştirir.
// Tek bir koşullu UPDATE ile yapılır; başka hiçbir alan değişmez.
func (r *TestimonialRepository) TransitionStatus(ctx context.Context, id, userID uint, from, to models.TestimonialStatus, at time.Time) error {
	db := dbFromContext(ctx, r.db)
	result := db.Model(&models.Testimonial{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, from).
		UpdateColumns(map[string]any{"status": to, "updated_at": at})
	if result.Error != nil {
		configslog.Log.Error("TestimonialRepository.TransitionStatus: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}
	var existing models.Testimonial
	if err := db.Where("id = ? AND user_id = ?", id, userID).First(&existing).Error; err != nil {
		return translateNotFound(err)
	}
	return ErrStatusConflict
}

type statusRow struct {
	Status     models.TestimonialStatus
	TotalCount int64
}

// CountByStatus hesaptaki tanıklıkları duruma göre sayar.
func (r *TestimonialRepository) CountByStatus(ctx context.Context, userID uint) (StatusCounts, error) {
	var rows []statusRow
	var counts StatusCounts
	err := dbFromContext(ctx, r.db).Model(&models.Testimonial{}).
		Select("status, COUNT(*) AS total_count").Where("user_id = ?", userID).
		Group("status").Scan(&rows).Error
	if err != nil {
		return counts, err
	}
	for _, row := range rows {
		switch row.Status {
		case models.TestimonialStatusPending:
			counts.Pending = row.TotalCount
		case models.TestimonialStatusApproved:
			counts.Approved = row.TotalCount
		case models.TestimonialStatusRejected:
			counts.Rejected = row.TotalCount
		}
	}
	return counts, nil
}

type avgRow struct {
	AvgRating  *float64
	TotalCount int64
}

// AverageRating ortalama puanı ve kayıt sayısını döndürür. status boşsa tüm durumlar.
func (r *TestimonialRepository) AverageRating(ctx context.Context, userID uint, status models.TestimonialStatus) (float64, int64, error) {
	var row avgRow
	query := dbFromContext(ctx, r.db).Model(&models.Testimonial{}).
		Select("AVG(rating) AS avg_rating, COUNT(*) AS total_count").Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	if row.AvgRating == nil {
		return 0, row.TotalCount, nil
	}
	return *row.AvgRating, row.TotalCount, nil
}

var _ ITestimonialRepository = (*TestimonialRepository)(nil)
