package customizing

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCard        = errors.New("card desconhecido")
	ErrUnknownChartTarget = errors.New("gráfico desconhecido")
	ErrInvalidColor       = errors.New("cor inválida")
	ErrPersistFailure     = errors.New("erro ao salvar layout")
	ErrLayoutUnavailable  = errors.New("layout indisponível")
	ErrUnsupportedVersion = errors.New("versão de layout não suportada")
)

// CustomizeError é um erro com o código de API correspondente
type CustomizeError struct {
	Err     error
	Code    string
	Details string
}

func (e *CustomizeError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CustomizeError) Unwrap() error {
	return e.Err
}

func NewCustomizeError(baseErr error, code string, details string) *CustomizeError {
	return &CustomizeError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// APICode expõe o código usado na resposta HTTP
func (e *CustomizeError) APICode() string {
	return e.Code
}
