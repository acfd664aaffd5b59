package integrator

import (
	"errors"
	"fmt"
)

// Identificadores das plataformas usados em erros, logs e métricas
const (
	VendorGoogleAds = "google_ads"
	VendorMetaAds   = "meta_ads"
)

// VendorAuthError indica credencial inválida ou expirada na construção do cliente
type VendorAuthError struct {
	Vendor  string
	Message string
	Err     error
}

func (e *VendorAuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: authentication failed: %s: %v", e.Vendor, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: authentication failed: %s", e.Vendor, e.Message)
}

func (e *VendorAuthError) Unwrap() error {
	return e.Err
}

// VendorQueryError representa uma consulta de listagem que falhou na plataforma.
// Não é repetida por quem a produz.
type VendorQueryError struct {
	Vendor     string
	Code       string
	Message    string
	Scope      string
	StatusCode int
}

func (e *VendorQueryError) Error() string {
	return fmt.Sprintf("%s: query failed (code: %s, scope: %s): %s", e.Vendor, e.Code, e.Scope, e.Message)
}

// NewAuthError cria um VendorAuthError
func NewAuthError(vendor, message string, err error) *VendorAuthError {
	return &VendorAuthError{
		Vendor:  vendor,
		Message: message,
		Err:     err,
	}
}

// NewQueryError cria um VendorQueryError
func NewQueryError(vendor, code, message, scope string, statusCode int) *VendorQueryError {
	return &VendorQueryError{
		Vendor:     vendor,
		Code:       code,
		Message:    message,
		Scope:      scope,
		StatusCode: statusCode,
	}
}

// IsVendorError verifica se o erro veio de uma das plataformas
func IsVendorError(err error) bool {
	var authErr *VendorAuthError
	var queryErr *VendorQueryError
	return errors.As(err, &authErr) || errors.As(err, &queryErr)
}
