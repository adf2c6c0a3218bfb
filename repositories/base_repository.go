package repositories

import (
	"context"
	"errors"
	"strings"

	"wallof.love/configs/configslog"
	"wallof.love/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotFound kayıt bulunamadığında tüm repository'ler bunu döndürür.
var ErrNotFound = errors.New("kayıt bulunamadı")

type txKey struct{}

// WithTx context'e transaction ekler; repository'ler dbFromContext ile bunu tercih eder.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func dbFromContext(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return fallback.WithContext(ctx)
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// IBaseRepository tüm modeller için ortak CRUD işlemleri.
type IBaseRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	Delete(ctx context.Context, id uint) error
	SetAllowedSortColumns(columns []string)
	ApplySort(query *gorm.DB, params queryparams.ListParams, fallback string) *gorm.DB
}

// BaseRepository IBaseRepository'nin generik uygulamasıdır.
type BaseRepository[T any] struct {
	db          *gorm.DB
	allowedSort map[string]bool
}

// NewBaseRepository verilen bağlantı için generik repository oluşturur.
func NewBaseRepository[T any](db *gorm.DB) IBaseRepository[T] {
	return &BaseRepository[T]{db: db, allowedSort: map[string]bool{}}
}

func (r *BaseRepository[T]) SetAllowedSortColumns(columns []string) {
	r.allowedSort = make(map[string]bool, len(columns))
	for _, c := range columns {
		r.allowedSort[c] = true
	}
}

func (r *BaseRepository[T]) Create(ctx context.Context, entity *T) error {
	return dbFromContext(ctx, r.db).Create(entity).Error
}

func (r *BaseRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := dbFromContext(ctx, r.db).First(&entity, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &entity, nil
}

func (r *BaseRepository[T]) Delete(ctx context.Context, id uint) error {
	var entity T
	result := dbFromContext(ctx, r.db).Delete(&entity, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ApplySort izin verilen bir sütuna göre sıralar; izin yoksa fallback kullanılır.
func (r *BaseRepository[T]) ApplySort(query *gorm.DB, params queryparams.ListParams, fallback string) *gorm.DB {
	column := fallback
	if params.SortBy != "" {
		if r.allowedSort[params.SortBy] {
			column = params.SortBy
		} else {
			configslog.Log.Warn("Geçersiz sıralama alanı istendi, varsayılan kullanılıyor.", zap.String("requestedSortBy", params.SortBy))
		}
	}
	order := strings.ToLower(params.OrderBy)
	if order != "asc" && order != "desc" {
		order = queryparams.DefaultOrderBy
	}
	return query.Order(column + " " + order).Order("id " + order)
}
