package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL formata um valor no padrão monetário brasileiro: "R$ 1.234,56".
// Valores negativos mantêm o sinal depois do símbolo ("R$ -1.234,56").
func FormatBRL(value float64) string {
	return "R$ " + FormatDecimalBR(value, 2)
}

// FormatDecimalBR formata com separador de milhar "." e decimal ","
func FormatDecimalBR(value float64, places int32) string {
	fixed := decimal.NewFromFloat(value).StringFixed(places)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if negative && strings.Trim(intPart+fracPart, "0") != "" {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}

	return b.String()
}

// FormatPercent formata percentuais com uma casa decimal, como "83.3%"
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// FormatSignedPercent formata a variação em pontos percentuais, como "+3.2%"
func FormatSignedPercent(value float64) string {
	return fmt.Sprintf("%+.1f%%", value)
}

// ParseAmount aceita "1234.56", "1234,56", "1.234,56" e "R$ 1.234,56"
func ParseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("valor numérico inválido: %q", raw)
	}

	f, _ := d.Float64()
	return f, nil
}
