package dataset

import "errors"

var (
	ErrSnapshotsDisabled = errors.New("snapshots de relatório desabilitados")
	ErrEmptySales        = errors.New("a planilha de vendas não possui nenhuma linha válida")
)
