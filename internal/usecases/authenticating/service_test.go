package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/metas-dashboard/internal/config"
	"github.com/vfg2006/metas-dashboard/internal/domain"
)

func newTestService(now time.Time) *Service {
	svc := NewService(&config.Config{SecretKey: "segredo-de-teste"}).(*Service)
	svc.now = func() time.Time { return now }
	return svc
}

func TestService_IssueAndValidate(t *testing.T) {
	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	token, err := svc.IssueToken("ds-1", now.Add(2*time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ds-1", claims.DatasetID)
	assert.Equal(t, "ds-1", claims.Subject)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestService_ValidateToken(t *testing.T) {
	now := time.Date(2024, 1, 16, 12, 0, 0, 0, time.UTC)
	svc := newTestService(now)

	valid, err := svc.IssueToken("ds-1", now.Add(time.Hour))
	require.NoError(t, err)

	expired, err := svc.IssueToken("ds-1", now.Add(-time.Minute))
	require.NoError(t, err)

	otherSecret, err := NewService(&config.Config{SecretKey: "outro"}).IssueToken("ds-1", now.Add(time.Hour))
	require.NoError(t, err)

	mismatched, err := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
		DatasetID: "ds-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "ds-2",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}).SignedString(svc.secretKey)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"token válido", valid, nil},
		{"token ausente", "", ErrMissingToken},
		{"token expirado", expired, ErrExpiredToken},
		{"assinado com outra chave", otherSecret, ErrInvalidToken},
		{"subject diferente do dataset", mismatched, ErrInvalidToken},
		{"texto qualquer", "abc.def.ghi", ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.NotNil(t, claims)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "erro inesperado: %v", err)
			assert.True(t, IsAuthorizationError(err))
			assert.Nil(t, claims)
		})
	}
}

func TestService_IssueToken_EmptyDataset(t *testing.T) {
	svc := newTestService(time.Now())

	_, err := svc.IssueToken("", time.Now().Add(time.Hour))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIsAuthorizationError(t *testing.T) {
	assert.True(t, IsAuthorizationError(ErrDatasetMismatch))
	assert.False(t, IsAuthorizationError(errors.New("outro erro")))
	assert.False(t, IsAuthorizationError(nil))
}
