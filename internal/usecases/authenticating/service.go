package authenticating

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-cost-api/internal/config"
	"github.com/vfg2006/campaign-cost-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

type Authenticator interface {
	Login(username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{cfg: cfg}
}

// Login valida as credenciais do operador contra o par definido no ambiente e
// emite o token de sessão. ADMIN_PASSWORD pode ser a senha em texto ou um
// hash bcrypt; o prefixo decide a comparação.
func (s *Service) Login(username, password string) (string, error) {
	if s.cfg.Admin.Username == "" || s.cfg.Admin.Password == "" {
		logrus.Error("auth: ADMIN_USERNAME/ADMIN_PASSWORD ausentes no ambiente")
		return "", ErrAdminNotConfigured
	}

	if subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Admin.Username)) != 1 {
		return "", ErrInvalidCredentials
	}

	if err := s.comparePassword(password); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := &domain.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.cfg.Auth.Secret))
	if err != nil {
		return "", errors.Wrap(err, "erro ao assinar o token de sessão")
	}

	logrus.WithField("username", username).Info("auth: login realizado com sucesso")

	return signed, nil
}

func (s *Service) comparePassword(password string) error {
	stored := s.cfg.Admin.Password

	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password))
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(stored)) != 1 {
		return ErrInvalidCredentials
	}

	return nil
}

// ValidateToken verifica assinatura e validade do token de sessão.
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	claims := &domain.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
