package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de acesso ao dataset
	ErrInvalidToken    = "AUTH_001" // Token do dataset inválido ou expirado
	ErrDatasetNotFound = "AUTH_002" // Dataset inexistente ou já expirado
	ErrDatasetMismatch = "AUTH_003" // Token emitido para outro dataset

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Arquivos ou parâmetros obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Planilha fora do layout esperado
	ErrPayloadTooLarge     = "VAL_004" // Upload acima do limite

	// Avisos bloqueantes do relatório
	ErrNoMonthsSelected     = "REP_001" // Nenhum mês selecionado
	ErrNoSalespersonTargets = "REP_002" // Vendedor sem metas cadastradas
	ErrUnknownChart         = "REP_003" // Gráfico inexistente
	ErrChartNotRenderable   = "REP_004" // Gráfico sem dados para desenhar
	ErrSnapshotsDisabled    = "REP_005" // Snapshots desabilitados

	// Erros do servidor
	ErrInternalServer   = "SRV_001" // Erro interno do servidor
	ErrRouteNotFound    = "SRV_002" // Rota inexistente
	ErrMethodNotAllowed = "SRV_003" // Método não suportado
)

var httpStatusMap = map[string]int{
	ErrInvalidToken:         http.StatusUnauthorized,
	ErrDatasetNotFound:      http.StatusNotFound,
	ErrDatasetMismatch:      http.StatusForbidden,
	ErrInvalidRequest:       http.StatusBadRequest,
	ErrMissingRequiredData:  http.StatusBadRequest,
	ErrInvalidFormat:        http.StatusBadRequest,
	ErrPayloadTooLarge:      http.StatusRequestEntityTooLarge,
	ErrNoMonthsSelected:     http.StatusBadRequest,
	ErrNoSalespersonTargets: http.StatusUnprocessableEntity,
	ErrUnknownChart:         http.StatusNotFound,
	ErrChartNotRenderable:   http.StatusUnprocessableEntity,
	ErrSnapshotsDisabled:    http.StatusNotFound,
	ErrInternalServer:       http.StatusInternalServerError,
	ErrRouteNotFound:        http.StatusNotFound,
	ErrMethodNotAllowed:     http.StatusMethodNotAllowed,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado na resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
