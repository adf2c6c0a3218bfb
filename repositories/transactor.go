package repositories

import (
	"context"

	"wallof.love/configs"

	"gorm.io/gorm"
)

// ITransactor birden fazla repository çağrısını tek transaction içinde çalıştırır.
// fn'e verilen context transaction'ı taşır; repository'ler onu dbFromContext ile kullanır.
type ITransactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type GormTransactor struct {
	db *gorm.DB
}

func NewTransactor() ITransactor {
	return &GormTransactor{db: configs.GetDB()}
}

func NewTransactorTx(db *gorm.DB) ITransactor {
	return &GormTransactor{db: db}
}

// Transaction context'te zaten bir transaction varsa onu kullanır (iç içe çağrılar).
func (t *GormTransactor) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}

var _ ITransactor = (*GormTransactor)(nil)
