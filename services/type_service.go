package services

import (
	"context"
	"errors"

	"wallof.love/configs/configslog"
	"wallof.love/models"
	"wallof.love/repositories"

	"go.uber.org/zap"
)

// TypeServiceError özel servis hataları
type TypeServiceError string

func (e TypeServiceError) Error() string { return string(e) }

const ErrTypeNotFound TypeServiceError = "hizmet türü bulunamadı"

// ITypeService link hizmet türleri için arayüz.
type ITypeService interface {
	GetTypeByName(ctx context.Context, name string) (*models.Type, error)
}

type TypeService struct {
	repo repositories.ITypeRepository
}

func NewTypeService() ITypeService {
	return &TypeService{repo: repositories.NewTypeRepository()}
}

func NewTypeServiceWith(repo repositories.ITypeRepository) ITypeService {
	return &TypeService{repo: repo}
}

func (s *TypeService) GetTypeByName(ctx context.Context, name string) (*models.Type, error) {
	t, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			configslog.Log.Error("Hizmet türü seed edilmemiş", zap.String("name", name))
			return nil, ErrTypeNotFound
		}
		return nil, err
	}
	return t, nil
}

var _ ITypeService = (*TypeService)(nil)
