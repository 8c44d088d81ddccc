package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tagMiddleware(tag string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Ordem", tag)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:        "/v1/datasets/:id",
		Method:      http.MethodGet,
		Middlewares: []func(http.Handler) http.Handler{tagMiddleware("auth"), tagMiddleware("owner")},
		Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
	}))

	tests := []struct {
		name     string
		method   string
		path     string
		validate func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name:   "middlewares na ordem declarada",
			method: http.MethodGet,
			path:   "/v1/datasets/abc",
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNoContent, w.Code)
				assert.Equal(t, []string{"auth", "owner"}, w.Header().Values("X-Ordem"))
			},
		},
		{
			name:   "rota inexistente em JSON",
			method: http.MethodGet,
			path:   "/v2/qualquer",
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, w.Code)
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
				assert.Contains(t, w.Body.String(), `"SRV_002"`)
			},
		},
		{
			name:   "método não suportado em JSON",
			method: http.MethodPost,
			path:   "/v1/datasets/abc",
			validate: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
				assert.Contains(t, w.Body.String(), `"SRV_003"`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			rt.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			tt.validate(t, w)
		})
	}
}
