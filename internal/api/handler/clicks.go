package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-cost-api/internal/domain"
	"github.com/vfg2006/campaign-cost-api/internal/usecases/tracking"
	"github.com/vfg2006/campaign-cost-api/pkg/log"
	"github.com/vfg2006/campaign-cost-api/pkg/utils"
)

type ClickListRequest struct {
	CampaignID string `json:"campaign_id"`
	DateFrom   string `json:"date_from"`
	DateTo     string `json:"date_to"`
}

type ClickListResponse struct {
	Clicks []*domain.Click `json:"clicks"`
}

func ListClicks(service tracking.ClickLister) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req ClickListRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		if req.CampaignID == "" || req.DateFrom == "" || req.DateTo == "" {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "campaign_id, date_from and date_to are required"})
			return
		}

		if _, _, err := utils.DayBounds(req.DateFrom, req.DateTo); err != nil {
			logger.WithError(err).Warn("cliques: período inválido")
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid date range"})
			return
		}

		logger.WithFields(log.Fields{
			"campaign_id": req.CampaignID,
			"date_from":   req.DateFrom,
			"date_to":     req.DateTo,
		}).Info("cliques: listando")

		clicks, err := service.ListClicks(req.CampaignID, req.DateFrom, req.DateTo)
		if err != nil {
			respondProxyError(w, r, err, "falha ao listar cliques")
			return
		}

		respondJSON(w, http.StatusOK, ClickListResponse{Clicks: clicks})
	})
}
