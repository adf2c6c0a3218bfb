package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"wallof.love/configs"
	"wallof.love/configs/configslog"
	"wallof.love/models"
	"wallof.love/pkg/sessionevents"
	"wallof.love/repositories"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceError özel servis hataları
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials AuthServiceError = "e-posta veya şifre hatalı"
	ErrUserInactive       AuthServiceError = "hesabınız aktif değil"
	ErrUserNotFound       AuthServiceError = "kullanıcı bulunamadı"
	ErrEmailTaken         AuthServiceError = "bu e-posta adresi zaten kayıtlı"
	ErrRegisterInvalid    AuthServiceError = "ad, geçerli bir e-posta ve en az 8 karakterli şifre gereklidir"
	ErrRegisterFailed     AuthServiceError = "kayıt oluşturulamadı"
	ErrInvalidToken       AuthServiceError = "geçersiz veya süresi dolmuş token"
	ErrTokenSecretMissing AuthServiceError = "JWT_SECRET tanımlı değil"
)

const (
	minPasswordLength = 8
	tokenIssuer       = "wallof.love"
)

// IAuthService kimlik doğrulama ve API token işlemleri için arayüz.
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context, userID uint)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	IssueToken(user *models.User) (string, time.Time, error)
	ParseToken(token string) (uint, error)
	RecordLogin(ctx context.Context, e sessionevents.Event) error
}

// AuthService IAuthService arayüzünü uygular. Oturum değişiklikleri hub'a olay olarak yayınlanır.
type AuthService struct {
	users     repositories.IUserRepository
	hub       *sessionevents.Hub
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(hub *sessionevents.Hub) IAuthService {
	hours := configs.GetEnvInt("JWT_EXPIRATION_HOURS", 72)
	return NewAuthServiceWith(repositories.NewUserRepository(), hub,
		[]byte(configs.GetEnv("JWT_SECRET", "")), time.Duration(hours)*time.Hour)
}

func NewAuthServiceWith(users repositories.IUserRepository, hub *sessionevents.Hub, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{users: users, hub: hub, jwtSecret: secret, tokenTTL: ttl, now: time.Now}
}

func (s *AuthService) publish(kind sessionevents.Kind, userID uint) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(sessionevents.Event{Kind: kind, UserID: userID, At: s.now().UTC()})
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || len(password) < minPasswordLength {
		return nil, ErrRegisterInvalid
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrRegisterInvalid
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrRegisterFailed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		configslog.Log.Error("Şifre hashlenemedi", zap.Error(err))
		return nil, ErrRegisterFailed
	}
	user := &models.User{Name: name, Email: email, Password: string(hash), IsActive: true}
	if err := s.users.Create(ctx, user); err != nil {
		configslog.Log.Error("Kullanıcı oluşturulamadı", zap.String("email", email), zap.Error(err))
		return nil, ErrRegisterFailed
	}
	s.publish(sessionevents.KindRegister, user.ID)
	return user, nil
}

// Authenticate e-posta ve şifreyi doğrular, başarılı girişte login olayı yayınlar.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}
	s.publish(sessionevents.KindLogin, user.ID)
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, userID uint) {
	if userID != 0 {
		s.publish(sessionevents.KindLogout, userID)
	}
}

func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// IssueToken API istekleri için HS256 imzalı bir token üretir.
func (s *AuthService) IssueToken(user *models.User) (string, time.Time, error) {
	if len(s.jwtSecret) == 0 {
		return "", time.Time{}, ErrTokenSecretMissing
	}
	now := s.now().UTC()
	expires := now.Add(s.tokenTTL)
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   strconv.FormatUint(uint64(user.ID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("token imzalanamadı: %w", err)
	}
	return signed, expires, nil
}

// ParseToken token'ı doğrular ve kullanıcı ID'sini döndürür. Yalnızca HS256 kabul edilir.
func (s *AuthService) ParseToken(token string) (uint, error) {
	if len(s.jwtSecret) == 0 {
		return 0, ErrTokenSecretMissing
	}
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) { return s.jwtSecret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}

// RecordLogin login olaylarında son giriş zamanını yazar; diğer olaylar yok sayılır.
func (s *AuthService) RecordLogin(ctx context.Context, e sessionevents.Event) error {
	if e.Kind != sessionevents.KindLogin {
		return nil
	}
	return s.users.TouchLastLogin(ctx, e.UserID, e.At)
}

var _ IAuthService = (*AuthService)(nil)
