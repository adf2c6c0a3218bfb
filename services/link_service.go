package services

import (
	"context"
	"errors"
	"fmt"

	"wallof.love/configs/configslog"
	"wallof.love/models"
	"wallof.love/repositories"

	"go.uber.org/zap"
)

// LinkServiceError özel servis hataları
type LinkServiceError string

func (e LinkServiceError) Error() string { return string(e) }

const (
	ErrLinkNotFound            LinkServiceError = "link bulunamadı"
	ErrLinkCreationFailed      LinkServiceError = "link oluşturulamadı"
	ErrLinkKeyGenerationFailed LinkServiceError = "benzersiz link anahtarı üretilemedi"
	ErrLinkDeletionFailed      LinkServiceError = "link silinemedi"
	ErrLinkInvalidInput        LinkServiceError = "geçersiz link girdisi"
)

// linkKeyAttempts çakışma halinde kaç farklı anahtar deneneceği.
const linkKeyAttempts = 5

// ILinkService link işlemleri için arayüz.
type ILinkService interface {
	CreateLink(ctx context.Context, creatorUserID, typeID, targetID uint) (*models.Link, error)
	GetLinkByKey(ctx context.Context, key string) (*models.Link, error)
	DeleteLink(ctx context.Context, deletingUserID, linkID uint) error
	// EnsureLink hedefin linki yoksa oluşturur, varsa mevcut olanı döndürür.
	EnsureLink(ctx context.Context, creatorUserID uint, typeName string, targetID uint) (*models.Link, error)
}

// LinkService ILinkService arayüzünü uygular.
type LinkService struct {
	repo        repositories.ILinkRepository
	typeService ITypeService
	newKey      func() string
}

// NewLinkService yeni bir LinkService örneği oluşturur.
func NewLinkService() ILinkService {
	return NewLinkServiceWith(repositories.NewLinkRepository(), NewTypeService())
}

// NewLinkServiceWith bağımlılıkları dışarıdan alır (testler için).
func NewLinkServiceWith(repo repositories.ILinkRepository, typeService ITypeService) *LinkService {
	return &LinkService{repo: repo, typeService: typeService, newKey: models.NewLinkKey}
}

// uniqueKey daha önce kullanılmamış (silinmişler dahil) bir anahtar bulur.
func (s *LinkService) uniqueKey(ctx context.Context) (string, error) {
	for i := 0; i < linkKeyAttempts; i++ {
		key := s.newKey()
		exists, err := s.repo.KeyExists(ctx, key)
		if err != nil {
			return "", err
		}
		if !exists {
			return key, nil
		}
		configslog.Log.Warn("Link key çakışması, yeni anahtar deneniyor", zap.Int("attempt", i+1))
	}
	return "", ErrLinkKeyGenerationFailed
}

// CreateLink hedef kayıt için yeni bir link oluşturur.
func (s *LinkService) CreateLink(ctx context.Context, creatorUserID, typeID, targetID uint) (*models.Link, error) {
	if typeID == 0 || creatorUserID == 0 {
		return nil, fmt.Errorf("%w: geçersiz typeID veya creatorUserID", ErrLinkInvalidInput)
	}
	key, err := s.uniqueKey(ctx)
	if err != nil {
		if errors.Is(err, ErrLinkKeyGenerationFailed) {
			return nil, err
		}
		return nil, ErrLinkCreationFailed
	}

	link := &models.Link{
		Key:           key,
		TypeID:        typeID,
		TargetID:      targetID,
		CreatorUserID: creatorUserID,
	}
	if err := s.repo.Create(models.WithUserID(ctx, creatorUserID), link); err != nil {
		configslog.Log.Error("Link oluşturulurken repository hatası", zap.Error(err), zap.Uint("typeID", typeID), zap.Uint("creatorUserID", creatorUserID))
		return nil, ErrLinkCreationFailed
	}
	configslog.SLog.Infof("Link oluşturuldu: ID %d, Key: %s (Oluşturan: %d)", link.ID, link.Key, creatorUserID)
	return link, nil
}

// GetLinkByKey public anahtar ile linki alır.
func (s *LinkService) GetLinkByKey(ctx context.Context, key string) (*models.Link, error) {
	link, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}
	return link, nil
}

// DeleteLink linki siler. Bağlı hedefin zaten silinmiş olması beklenir.
func (s *LinkService) DeleteLink(ctx context.Context, deletingUserID, linkID uint) error {
	if linkID == 0 || deletingUserID == 0 {
		return fmt.Errorf("%w: geçersiz linkID veya deletingUserID", ErrLinkInvalidInput)
	}
	link, err := s.repo.FindByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrLinkNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, link, deletingUserID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrLinkNotFound
		}
		configslog.Log.Error("Link silinirken repository hatası", zap.Uint("link_id", linkID), zap.Error(err))
		return ErrLinkDeletionFailed
	}
	configslog.SLog.Infof("Link silindi: ID %d, Key: %s (Silen: %d)", linkID, link.Key, deletingUserID)
	return nil
}

func (s *LinkService) EnsureLink(ctx context.Context, creatorUserID uint, typeName string, targetID uint) (*models.Link, error) {
	t, err := s.typeService.GetTypeByName(ctx, typeName)
	if err != nil {
		return nil, err
	}
	link, err := s.repo.FindByTarget(ctx, t.ID, targetID)
	if err == nil {
		return link, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	link, err = s.CreateLink(ctx, creatorUserID, t.ID, targetID)
	if err != nil {
		return nil, err
	}
	link.Type = *t
	return link, nil
}

var _ ILinkService = (*LinkService)(nil)
