// Package web guarda o template do relatório em HTML servido pela API
package web

import (
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/vfg2006/metas-dashboard/internal/domain"
	"github.com/vfg2006/metas-dashboard/pkg/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"date":  func(t time.Time) string { return t.Format("02/01/2006") },
	"brl":   utils.FormatBRL,
	"color": func(s domain.Severity) string { return domain.SeverityColor(s) },
}

var templates = template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))

// ChartImage aponta para a rota PNG de um gráfico do relatório
type ChartImage struct {
	ID    string
	Title string
	URL   string
	Empty string
}

// ReportPage é o modelo do relatório completo
type ReportPage struct {
	Overview           *domain.Report
	OverviewCharts     []ChartImage
	Salespeople        []string
	Salesperson        *domain.Report
	SalespersonCharts  []ChartImage
	SalespersonWarning string
	GeneratedAt        time.Time
}

func RenderReport(w io.Writer, page ReportPage) error {
	return templates.ExecuteTemplate(w, "report.html", page)
}
