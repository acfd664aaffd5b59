package handler

import (
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/middleware"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LoginRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			if authenticating.IsCredentialsError(err) {
				log.ForContext(r.Context()).WithError(err).Info("Login recusado")
			}
			handleError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusOK, domain.LoginResponse{Token: token})
	}
}

// GetMe retorna o perfil do usuário do token
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), claims.UserID)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusOK, user)
	}
}

// requesterFrom extrai o solicitante; responde 401 quando ausente
func requesterFrom(w http.ResponseWriter, r *http.Request) (domain.Requester, bool) {
	requester, ok := middleware.RequesterFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
	}
	return requester, ok
}

// pathID lê um identificador numérico da rota; responde 400 quando inválido
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := utils.PathInt(r, name)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return 0, false
	}
	return id, true
}

func writeResponse(w http.ResponseWriter, r *http.Request, status int, body any) {
	if err := utils.WriteJSON(w, status, body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}
