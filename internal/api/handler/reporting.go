package handler

import (
	"net/http"

	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

func GoogleCampaigns(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := requesterFrom(w, r)
		if !ok {
			return
		}
		accountID, ok := pathID(w, r, "account_id")
		if !ok {
			return
		}

		campaigns, err := service.GoogleCampaigns(r.Context(), requester, accountID)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusOK, campaigns)
	}
}

func GoogleAdGroups(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := requesterFrom(w, r)
		if !ok {
			return
		}
		accountID, ok := pathID(w, r, "account_id")
		if !ok {
			return
		}

		adGroups, err := service.GoogleAdGroups(r.Context(), requester, accountID, utils.PathParam(r, "campaign_id"))
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusOK, adGroups)
	}
}

func GoogleAds(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := requesterFrom(w, r)
		if !ok {
			return
		}
		accountID, ok := pathID(w, r, "account_id")
		if !ok {
			return
		}

		ads, err := service.GoogleAds(r.Context(), requester, accountID, utils.PathParam(r, "campaign_id"))
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusOK, ads)
	}
}

func MetaCampaigns(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := requesterFrom(w, r)
		if !ok {
			return
		}
		accountID, ok := pathID(w, r, "account_id")
		if !ok {
			return
		}

		campaigns, err := service.MetaCampaigns(r.Context(), requester, accountID)
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusOK, campaigns)
	}
}

// MetaAds atende as duas rotas; sem campaign_id lista a conta inteira
func MetaAds(service reporting.ReportingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester, ok := requesterFrom(w, r)
		if !ok {
			return
		}
		accountID, ok := pathID(w, r, "account_id")
		if !ok {
			return
		}

		ads, err := service.MetaAds(r.Context(), requester, accountID, utils.PathParam(r, "campaign_id"))
		if err != nil {
			handleError(w, r, err)
			return
		}

		writeResponse(w, r, http.StatusOK, ads)
	}
}
