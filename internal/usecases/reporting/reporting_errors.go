package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCampaignID = errors.New("campaign id is required")
)

// ReportingError é usado apenas para validações locais. Erros das plataformas
// e do cadastro de contas chegam ao chamador sem alteração.
type ReportingError struct {
	Err       error
	Code      string
	AccountID int
	Details   string
}

func (e *ReportingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportingError) Unwrap() error {
	return e.Err
}

func NewReportingError(err error, code string, accountID int, details string) *ReportingError {
	return &ReportingError{
		Err:       err,
		Code:      code,
		AccountID: accountID,
		Details:   details,
	}
}
