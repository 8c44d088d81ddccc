package domain

type ChartType string

const (
	ChartPie       ChartType = "pie"
	ChartBar       ChartType = "bar"
	ChartArea      ChartType = "area"
	ChartHeatmap   ChartType = "heatmap"
	ChartHistogram ChartType = "histogram"
)

// Identificadores estáveis usados nas rotas de imagem
const (
	ChartAttainmentInitial = "attainment-initial"
	ChartAttainmentMonthly = "attainment-monthly"
	ChartDistribution      = "distribution"
	ChartHeatmapRevenue    = "heatmap"
	ChartHistogramRevenue  = "histogram"
	ChartBarInitial        = "bar-initial"
	ChartBarAccumulated    = "bar-accumulated"
	ChartCumulative        = "cumulative"
)

// Paleta do painel
var Colors = map[string]string{
	"primary": "#2563eb",
	"success": "#10b981",
	"warning": "#f59e0b",
	"danger":  "#ef4444",
	"info":    "#3b82f6",
	"neutral": "#64748b",
	"border":  "#e2e8f0",
	"muted":   "#94a3b8",
}

// DistributionPalette colore as fatias da pizza de distribuição por mês
var DistributionPalette = []string{
	"#2563eb", "#10b981", "#f59e0b", "#8b5cf6", "#ec4899", "#06b6d4",
	"#3b82f6", "#ef4444", "#84cc16", "#f97316", "#6366f1", "#14b8a6",
}

// HeatmapScale vai do azul claro ao escuro
var HeatmapScale = []string{"#e0e7ff", "#c7d2fe", "#818cf8", "#6366f1", "#4f46e5"}

// SeverityColor devolve a cor da faixa de atingimento
func SeverityColor(s Severity) string {
	if c, ok := Colors[string(s)]; ok {
		return c
	}
	return Colors["neutral"]
}

// Chart é a especificação de um gráfico, independente do motor de renderização
type Chart struct {
	ID          string            `json:"id"`
	Type        ChartType         `json:"type"`
	Title       string            `json:"title"`
	Categories  []string          `json:"categories"`
	Series      []ChartSeries     `json:"series"`
	Annotations []ChartAnnotation `json:"annotations,omitempty"`
	XAxis       string            `json:"x_axis,omitempty"`
	YAxis       string            `json:"y_axis,omitempty"`
	Percent     bool              `json:"percent"`
	ShowLabels  bool              `json:"show_labels"`
	Placeholder string            `json:"placeholder,omitempty"`
}

// Empty indica um gráfico sem dados, exibido apenas com o texto de aviso
func (c Chart) Empty() bool {
	return c.Placeholder != "" || len(c.Series) == 0
}

// ChartSeries é uma sequência de valores alinhada com Categories. Valores nil
// são pontos sem dado ("N/A"), nunca zero.
type ChartSeries struct {
	Name   string     `json:"name"`
	Kind   ChartType  `json:"kind"`
	Values []*float64 `json:"values"`
	Colors []string   `json:"colors,omitempty"`
	Color  string     `json:"color,omitempty"`
	Labels []string   `json:"labels,omitempty"`
}

type ChartAnnotation struct {
	Text  string `json:"text"`
	Color string `json:"color,omitempty"`
}
