package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/vfg2006/metas-dashboard/internal/domain"
)

// parseReportOptions lê months, percent e labels da query. Sem o parâmetro
// months todos os meses entram; com o parâmetro vazio a seleção fica vazia.
func parseReportOptions(r *http.Request) (domain.ReportOptions, error) {
	q := r.URL.Query()
	opts := domain.ReportOptions{ShowLabels: true}

	if _, ok := q["months"]; ok {
		months, err := parseMonths(q["months"])
		if err != nil {
			return opts, err
		}
		opts.Months = months
	}

	var err error
	if opts.Percent, err = parseBool(q.Get("percent"), false); err != nil {
		return opts, fmt.Errorf("parâmetro percent inválido: %w", err)
	}
	if opts.ShowLabels, err = parseBool(q.Get("labels"), true); err != nil {
		return opts, fmt.Errorf("parâmetro labels inválido: %w", err)
	}

	return opts, nil
}

// parseMonths aceita números (1-12) ou nomes ("Março"), separados por vírgula
// ou repetidos na query
func parseMonths(values []string) (domain.MonthSet, error) {
	set := domain.NewMonthSet()

	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			if n, err := strconv.Atoi(part); err == nil {
				if !domain.ValidMonth(n) {
					return nil, fmt.Errorf("mês inválido: %d", n)
				}
				set[n] = true
				continue
			}

			n, ok := domain.MonthFromName(part)
			if !ok {
				return nil, fmt.Errorf("mês inválido: %q", part)
			}
			set[n] = true
		}
	}

	return set, nil
}

func parseBool(raw string, fallback bool) (bool, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseBool(raw)
}
