package researching

import (
	"errors"
	"fmt"
)

var (
	ErrNarrativeService = errors.New("erro no serviço de análise de mercado")
	ErrNotConfigured    = errors.New("serviço de análise de mercado não configurado")
	ErrNoAnalysis       = errors.New("nenhuma análise disponível")
)

type ResearchError struct {
	Err     error
	Code    string
	Details string
}

func (e *ResearchError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ResearchError) Unwrap() error {
	return e.Err
}

func NewResearchError(baseErr error, code string, details string) *ResearchError {
	return &ResearchError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// APICode expõe o código usado na resposta HTTP
func (e *ResearchError) APICode() string {
	return e.Code
}
