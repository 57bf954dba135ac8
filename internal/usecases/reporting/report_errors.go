package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCategory = errors.New("categoria desconhecida")
	ErrBuildWorkbook   = errors.New("erro ao montar planilha")
)

// ReportError segue o formato dos demais erros de caso de uso
type ReportError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

func (e *ReportError) APICode() string {
	return e.Code
}

func NewReportError(baseErr error, code string, details string) *ReportError {
	return &ReportError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}
