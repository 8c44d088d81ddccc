package authenticating

import (
	"errors"
)

var (
	ErrInvalidToken    = errors.New("token inválido")
	ErrExpiredToken    = errors.New("token expirado")
	ErrMissingToken    = errors.New("token do dataset é obrigatório")
	ErrDatasetMismatch = errors.New("token não pertence a este dataset")
)

// IsAuthorizationError verifica se o erro está relacionado a problemas de autorização
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrMissingToken) ||
		errors.Is(err, ErrDatasetMismatch)
}
