package domain

import "time"

// SalesRecord é uma linha válida da planilha de vendas
type SalesRecord struct {
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	OrderCount  int       `json:"order_count"`
	Salesperson string    `json:"salesperson"`
}

// Month retorna o mês (1-12) da emissão
func (s SalesRecord) Month() int {
	return int(s.Date.Month())
}

// SaleDetail é a linha exibida no detalhamento de vendas do vendedor
type SaleDetail struct {
	Date            time.Time `json:"date"`
	Amount          float64   `json:"amount"`
	AmountFormatted string    `json:"amount_formatted"`
	OrderCount      int       `json:"order_count"`
}
