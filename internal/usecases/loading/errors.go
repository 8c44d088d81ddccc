package loading

import "github.com/pkg/errors"

// Erros de layout da planilha. São fatais e chegam ao usuário como estão.
var (
	ErrOpenWorkbook  = errors.New("não foi possível abrir a planilha")
	ErrMissingSheet  = errors.New("aba não encontrada")
	ErrEmptySheet    = errors.New("aba sem linhas")
	ErrMissingColumn = errors.New("coluna obrigatória ausente")
	ErrInvalidValue  = errors.New("valor inválido")
)
