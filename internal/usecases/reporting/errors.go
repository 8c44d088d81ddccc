package reporting

import "errors"

// Avisos bloqueantes: nenhuma parte do relatório é produzida
var (
	ErrNoMonthsSelected     = errors.New("selecione pelo menos um mês")
	ErrNoSalespersonTargets = errors.New("nenhuma meta encontrada")
	ErrEmptySalesperson     = errors.New("vendedor não informado")
	ErrUnknownChart         = errors.New("gráfico inexistente")
)
