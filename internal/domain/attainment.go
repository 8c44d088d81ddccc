package domain

// Severity é a faixa de cor do atingimento
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
	SeverityNeutral Severity = "neutral"
	SeverityInfo    Severity = "info"
)

// Limites das faixas de atingimento, em percentual
const (
	SuccessThreshold = 100.0
	WarningThreshold = 70.0
)

// Attainment é o realizado sobre a meta. Ratio nil significa "não se aplica".
type Attainment struct {
	Realized float64  `json:"realized"`
	Target   *float64 `json:"target"`
	Ratio    *float64 `json:"ratio"`
	Severity Severity `json:"severity"`
	Display  string   `json:"display"`
}

// Applicable informa se existe meta válida para o cálculo
func (a Attainment) Applicable() bool {
	return a.Ratio != nil
}

// SeverityFor classifica um percentual de atingimento
func SeverityFor(ratio float64) Severity {
	switch {
	case ratio >= SuccessThreshold:
		return SeveritySuccess
	case ratio >= WarningThreshold:
		return SeverityWarning
	default:
		return SeverityDanger
	}
}
