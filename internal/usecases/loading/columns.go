package loading

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// Colunas da planilha de vendas
const (
	ColIssueDate   = "EMISSÃO"
	ColAmount      = "VALOR"
	ColOrderCount  = "CONTAGEM"
	ColSalesperson = "VENDEDOR"
)

// Colunas da aba de metas gerais. "Mensal" vira a meta inicial e
// "Acumulado" vira a meta mensal; a meta acumulada repete a mensal.
const (
	ColMonth            = "Mês"
	ColTargetMonthly    = "Mensal"
	ColTargetAccumulate = "Acumulado"
)

// Colunas da aba de metas por vendedor
const (
	ColSPInitial     = "Meta Inicial"
	ColSPMonthly     = "Meta Mensal"
	ColSPAccumulated = "Meta Mensal Acumulada"
)

// header indexa as colunas pelo nome do cabeçalho, normalizado em NFC
type header map[string]int

func newHeader(row []string) header {
	h := make(header, len(row))
	for i, name := range row {
		name = norm.NFC.String(strings.TrimSpace(name))
		if _, exists := h[name]; !exists {
			h[name] = i
		}
	}
	return h
}

// require devolve os índices das colunas pedidas, falhando na primeira ausente
func (h header) require(sheet string, names ...string) ([]int, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		col, ok := h[norm.NFC.String(name)]
		if !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "aba %q: coluna %q", sheet, name)
		}
		idx[i] = col
	}
	return idx, nil
}

// cell lê a coluna da linha, tolerando linhas mais curtas que o cabeçalho
func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
