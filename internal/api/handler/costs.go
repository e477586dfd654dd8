package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-cost-api/internal/usecases/costing"
	"github.com/vfg2006/campaign-cost-api/pkg/log"
	"github.com/vfg2006/campaign-cost-api/pkg/utils"
)

type SuccessResponse struct {
	Success bool `json:"success"`
}

func UpdateCost(service costing.CostSubmitter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input costing.CostUpdateInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		if input.CampaignID == "" || input.DateFrom == "" || input.DateTo == "" {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "campaign_id, time_from and time_to are required"})
			return
		}

		if _, _, err := utils.DayBounds(input.DateFrom, input.DateTo); err != nil {
			logger.WithError(err).Warn("custo: período inválido")
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid date range"})
			return
		}

		logger.WithFields(log.Fields{
			"campaign_id": input.CampaignID,
			"cost":        input.Cost,
		}).Info("custo: recebida correção")

		if err := service.UpdateCost(input); err != nil {
			respondProxyError(w, r, err, "falha ao atualizar custo")
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Success: true})
	})
}
