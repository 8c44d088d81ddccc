package domain

// InsightKind identifica a regra que gerou o insight
type InsightKind string

const (
	InsightAttainment InsightKind = "attainment"
	InsightTrend      InsightKind = "trend"
	InsightBestPeriod InsightKind = "best_period"
)

// Insight é uma frase derivada dos agregados, exibida em destaque no painel
type Insight struct {
	Kind    InsightKind `json:"kind"`
	Type    Severity    `json:"type"`
	Title   string      `json:"title"`
	Text    string      `json:"text"`
	Percent *float64    `json:"percent,omitempty"`
}
