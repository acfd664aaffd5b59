package handler

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

// handleError traduz os erros dos casos de uso e das plataformas para o corpo padrão da API
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err).WithField("path", r.URL.Path)

	var (
		accountErr   *account.AccountError
		authErr      *authenticating.AuthError
		reportingErr *reporting.ReportingError
		vendorAuth   *integrator.VendorAuthError
		vendorQuery  *integrator.VendorQueryError
	)

	switch {
	case errors.As(err, &vendorAuth):
		logger.Warn("Credencial da plataforma rejeitada")
		apiErrors.WriteError(w, apiErrors.ErrExternalAuth, vendorAuth.Error(), map[string]any{
			"vendor": vendorAuth.Vendor,
		})

	case errors.As(err, &vendorQuery):
		logger.Warn("Consulta à plataforma falhou")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, vendorQuery.Message, map[string]any{
			"vendor":      vendorQuery.Vendor,
			"vendor_code": vendorQuery.Code,
			"scope":       vendorQuery.Scope,
			"status_code": vendorQuery.StatusCode,
		})

	case errors.As(err, &accountErr):
		logger.Debug("Erro de conta")
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), accountDetails(accountErr.AccountID))

	case errors.As(err, &authErr):
		logger.Debug("Erro de usuário")
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)

	case errors.As(err, &reportingErr):
		apiErrors.WriteError(w, reportingErr.Code, reportingErr.Error(), accountDetails(reportingErr.AccountID))

	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("Tempo esgotado")
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Tempo de resposta esgotado", nil)

	default:
		logger.Error("Erro não mapeado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
	}
}

func accountDetails(accountID int) map[string]any {
	if accountID == 0 {
		return nil
	}
	return map[string]any{"account_id": accountID}
}
