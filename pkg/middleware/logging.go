package middleware

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/vfg2006/metas-dashboard/pkg/log"
)

const slowRequest = 500 * time.Millisecond

// Parâmetros de query que nunca vão para o log
var sensitiveParams = []string{tokenQueryParam}

// LoggingMiddleware registra o início e o fim de cada requisição com o ID de correlação.
// Em desenvolvimento o registro é resumido; em produção inclui origem e query sem credenciais.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			r = r.WithContext(ctx)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			isDev := log.IsDevelopment()

			if isDev {
				log.L.WithFields(log.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				}).Info("→ Iniciando requisição")
			} else {
				log.L.WithFields(log.Fields{
					"correlation_id": correlationID,
					"remote_addr":    r.RemoteAddr,
					"method":         r.Method,
					"path":           r.URL.Path,
					"query":          redactQuery(r.URL),
					"user_agent":     r.UserAgent(),
					"content_length": r.ContentLength,
				}).Info("Requisição iniciada")
			}

			next.ServeHTTP(rec, r)

			elapsed := time.Since(start)
			fields := log.Fields{
				"correlation_id": correlationID,
				"method":         r.Method,
				"path":           r.URL.Path,
				"status_code":    rec.status,
				"duration_ms":    elapsed.Milliseconds(),
			}
			if id := datasetIDFromPath(r.URL.Path); id != "" {
				fields["dataset_id"] = id
			}

			msg := "Requisição finalizada"
			if isDev {
				symbol := "✓"
				if rec.status >= 400 {
					symbol = "✗"
				}
				msg = fmt.Sprintf("%s %s %s em %s", symbol, r.Method, r.URL.Path, formatDuration(elapsed))
			}
			logByStatus(log.L.WithFields(fields), rec.status, msg)

			if elapsed > slowRequest {
				log.L.WithFields(fields).Warnf("Requisição lenta: %s", formatDuration(elapsed))
			}
		})
	}
}

// redactQuery devolve a query string sem o token do dataset
func redactQuery(u *url.URL) string {
	if u.RawQuery == "" {
		return ""
	}

	query := u.Query()
	for _, param := range sensitiveParams {
		query.Del(param)
	}
	return query.Encode()
}

// datasetIDFromPath extrai o id de rotas /v1/datasets/:id/...
func datasetIDFromPath(path string) string {
	rest, ok := strings.CutPrefix(path, "/v1/datasets/")
	if !ok {
		return ""
	}
	id, _, _ := strings.Cut(rest, "/")
	return id
}

func logByStatus(logger log.Logger, status int, msg string) {
	switch {
	case status >= 500:
		logger.Error(msg)
	case status >= 400:
		logger.Warn(msg)
	default:
		logger.Info(msg)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%d µs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%d ms", d.Milliseconds())
	default:
		return fmt.Sprintf("%.2f s", d.Seconds())
	}
}

// statusRecorder guarda o status escrito pelo handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// LogPanicMiddleware converte panics dos handlers em 500 e registra a pilha
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				stack := make([]byte, 4096)
				stack = stack[:runtime.Stack(stack, false)]

				logger := log.L.WithFields(log.Fields{
					"correlation_id": log.GetCorrelationID(r.Context()),
					"error":          recovered,
					"method":         r.Method,
					"path":           r.URL.Path,
				})

				if log.IsDevelopment() {
					logger.Error("❌ PANIC na aplicação")
					fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n", stack)
				} else {
					logger.WithField("stack_trace", string(stack)).Error("Erro não tratado na aplicação")
				}

				http.Error(w, "Erro interno no servidor", http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
