package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/metas-dashboard/internal/domain"
)

func TestParseReportOptions(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantErr  bool
		validate func(t *testing.T, opts domain.ReportOptions)
	}{
		{
			name:  "sem parâmetros usa todos os meses e rótulos ligados",
			query: "",
			validate: func(t *testing.T, opts domain.ReportOptions) {
				assert.Nil(t, opts.Months)
				assert.False(t, opts.Percent)
				assert.True(t, opts.ShowLabels)
			},
		},
		{
			name:  "months vazio vira seleção vazia",
			query: "months=",
			validate: func(t *testing.T, opts domain.ReportOptions) {
				require.NotNil(t, opts.Months)
				assert.Empty(t, opts.Months.Sorted())
			},
		},
		{
			name:  "números e nomes, separados ou repetidos",
			query: "months=1,Mar%C3%A7o&months=2&percent=true&labels=false",
			validate: func(t *testing.T, opts domain.ReportOptions) {
				assert.Equal(t, []int{1, 2, 3}, opts.Months.Sorted())
				assert.True(t, opts.Percent)
				assert.False(t, opts.ShowLabels)
			},
		},
		{name: "mês fora do intervalo", query: "months=13", wantErr: true},
		{name: "nome desconhecido", query: "months=Brum%C3%A1rio", wantErr: true},
		{name: "percent inválido", query: "percent=talvez", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/v1/datasets/ds-1/overview?"+tt.query, nil)

			opts, err := parseReportOptions(req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, opts)
		})
	}
}
