package repositories

import (
	"context"

	"wallof.love/configs"
	"wallof.love/models"

	"gorm.io/gorm"
)

// ITypeRepository hizmet türleri için arayüz.
type ITypeRepository interface {
	FindByName(ctx context.Context, name string) (*models.Type, error)
}

type TypeRepository struct {
	db *gorm.DB
}

func NewTypeRepository() ITypeRepository {
	return &TypeRepository{db: configs.GetDB()}
}

func NewTypeRepositoryTx(tx *gorm.DB) ITypeRepository {
	return &TypeRepository{db: tx}
}

func (r *TypeRepository) FindByName(ctx context.Context, name string) (*models.Type, error) {
	var t models.Type
	if err := dbFromContext(ctx, r.db).Where("name = ?", name).First(&t).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &t, nil
}
