package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/metas-dashboard/internal/domain"
	"github.com/vfg2006/metas-dashboard/internal/usecases/authenticating"
	"github.com/vfg2006/metas-dashboard/pkg/apiErrors"
	"github.com/vfg2006/metas-dashboard/pkg/log"
)

type contextKey string

const (
	ContextKeyClaims contextKey = "claims"
)

// Rotas que não exigem token: o upload é quem emite o token
func isPublic(r *http.Request) bool {
	if r.Method == http.MethodOptions || r.URL.Path == "/healthcheck" {
		return true
	}
	return r.Method == http.MethodPost && strings.TrimSuffix(r.URL.Path, "/") == "/v1/datasets"
}

// AuthMiddleware valida o token do dataset enviado no header Authorization
// ou no parâmetro ?token=, usado pelas tags <img> do relatório HTML
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r) {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := TokenFromRequest(r)
			if tokenString == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token do dataset é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Token de dataset rejeitado")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido ou expirado", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

const tokenQueryParam = "token"

// TokenFromRequest lê o token do header Authorization ou do parâmetro ?token=
func TokenFromRequest(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token != authHeader {
			return strings.TrimSpace(token)
		}
	}
	return r.URL.Query().Get(tokenQueryParam)
}

// ClaimsFromContext devolve as claims gravadas pelo AuthMiddleware
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyClaims).(*domain.Claims)
	return claims, ok
}

// DatasetOwner restringe a rota ao dataset para o qual o token foi emitido.
// Deve ser usado como middleware de rota, depois que o router extraiu o :id.
func DatasetOwner() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Dataset não autenticado", nil)
				return
			}

			id := httprouter.ParamsFromContext(r.Context()).ByName("id")
			if id == "" || id != claims.DatasetID {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"dataset_id": id,
				}).Warn("Token usado em dataset diferente")
				apiErrors.WriteError(w, apiErrors.ErrDatasetMismatch, "Token não pertence a este dataset", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
