package insighting

import (
	"errors"
	"fmt"
)

var (
	ErrDataSourceUnavailable = errors.New("fonte de dados indisponível")
	ErrInvalidWindow         = errors.New("janela de dias inválida")
	ErrInvalidDateRange      = errors.New("intervalo de datas inválido")
	ErrNoSnapshot            = errors.New("nenhum agregado base disponível")
	ErrInvalidRiskRange      = errors.New("faixa de risco inválida")
)

// InsightError carrega o código de API junto com o erro base
type InsightError struct {
	Err     error
	Code    string
	Details string
}

func (e *InsightError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *InsightError) Unwrap() error {
	return e.Err
}

func NewInsightError(baseErr error, code string, details string) *InsightError {
	return &InsightError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// IsValidationError indica erros causados pelos parâmetros da requisição
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidWindow) || errors.Is(err, ErrInvalidDateRange) || errors.Is(err, ErrInvalidRiskRange)
}

// APICode expõe o código usado na resposta HTTP
func (e *InsightError) APICode() string {
	return e.Code
}
