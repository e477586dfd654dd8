package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-cost-api/internal/usecases/converting"
	"github.com/vfg2006/campaign-cost-api/pkg/log"
)

func UpdateRevenue(service converting.RevenueSubmitter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input converting.RevenueUpdateInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		if input.CampaignID == "" || input.ClickID == "" {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "campaign_id and clickid are required"})
			return
		}

		logger.WithFields(log.Fields{
			"campaign_id": input.CampaignID,
			"clickid":     input.ClickID,
			"payout":      input.Payout,
		}).Info("receita: recebido ajuste")

		if err := service.UpdateRevenue(input); err != nil {
			respondProxyError(w, r, err, "falha ao atualizar receita")
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Success: true})
	})
}
