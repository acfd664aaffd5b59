package handler

import (
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/account"
	"github.com/vfg2006/ads-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

// Os handlers de conta são os mesmos para as duas plataformas; a rota fixa a plataforma.

func ListAdAccounts(service account.AccountService, platform domain.Platform) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := requesterFrom(w, r)
		if !ok {
			return
		}

		accounts, err := service.ListAccounts(r.Context(), requester, platform)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusOK, accounts)
	}
}

func CreateAdAccount(service account.AccountService, platform domain.Platform) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := requesterFrom(w, r)
		if !ok {
			return
		}

		var req domain.CreateAdAccountRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		req.Platform = platform

		created, err := service.CreateAccount(r.Context(), requester, &req)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusCreated, created)
	}
}

func GetAdAccount(service account.AccountService, platform domain.Platform) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := requesterFrom(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		adAccount, err := service.GetAccount(r.Context(), requester, platform, id)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusOK, adAccount)
	}
}

func UpdateAdAccount(service account.AccountService, platform domain.Platform) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := requesterFrom(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdateAdAccountRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		req.ID = id
		req.Platform = platform

		updated, err := service.UpdateAccount(r.Context(), requester, &req)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusOK, updated)
	}
}

func DeleteAdAccount(service account.AccountService, platform domain.Platform) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := requesterFrom(w, r)
		if !ok {
			return
		}
		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.DeleteAccount(r.Context(), requester, platform, id); err != nil {
			handleError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
