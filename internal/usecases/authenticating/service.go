package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/metas-dashboard/internal/config"
	"github.com/vfg2006/metas-dashboard/internal/domain"
)

const issuer = "metas-dashboard"

// Authenticator emite e valida os tokens de acesso aos datasets
type Authenticator interface {
	IssueToken(datasetID string, expiresAt time.Time) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	secretKey []byte
	now       func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secretKey: []byte(cfg.SecretKey),
		now:       time.Now,
	}
}

func (s *Service) IssueToken(datasetID string, expiresAt time.Time) (string, error) {
	if datasetID == "" {
		return "", fmt.Errorf("%w: dataset sem identificador", ErrInvalidToken)
	}

	claims := domain.Claims{
		DatasetID: datasetID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   datasetID,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid || claims.DatasetID == "" || claims.Subject != claims.DatasetID {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
