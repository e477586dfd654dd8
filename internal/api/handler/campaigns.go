package handler

import (
	"net/http"

	"github.com/vfg2006/campaign-cost-api/internal/domain"
	"github.com/vfg2006/campaign-cost-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-cost-api/pkg/log"
)

type CampaignListResponse struct {
	Campaigns []*domain.Campaign `json:"campaigns"`
}

type CampaignSearchResponse struct {
	Campaign *domain.Campaign `json:"campaign"`
}

func ListCampaigns(service campaigning.CampaignResolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("campanhas: listando")

		campaigns, err := service.ListCampaigns()
		if err != nil {
			respondProxyError(w, r, err, "falha ao listar campanhas")
			return
		}

		respondJSON(w, http.StatusOK, CampaignListResponse{Campaigns: campaigns})
	})
}

// SearchCampaign resolve a identidade de uma campanha via relatório.
// Campanha não encontrada responde 200 com campaign nulo.
func SearchCampaign(service campaigning.CampaignResolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := r.URL.Query().Get("campaign_id")
		if campaignID == "" {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "campaign_id is required"})
			return
		}

		logger.WithField("campaign_id", campaignID).Info("campanhas: busca por relatório")

		campaign, err := service.SearchCampaignByReport(campaignID)
		if err != nil {
			respondProxyError(w, r, err, "falha na busca de campanha")
			return
		}

		respondJSON(w, http.StatusOK, CampaignSearchResponse{Campaign: campaign})
	})
}
