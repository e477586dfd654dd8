package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-cost-api/internal/domain"
	"github.com/vfg2006/campaign-cost-api/internal/usecases/subs"
	"github.com/vfg2006/campaign-cost-api/pkg/log"
)

type SubListResponse struct {
	Subs []*domain.SubOption `json:"subs"`
}

// ListGlobalSubs lista os slots com dados em qualquer campanha, mais os
// parâmetros rt_* da plataforma.
func ListGlobalSubs(service subs.SubResolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("subs: listagem global")

		options, err := service.ListGlobalSubOptions()
		if err != nil {
			respondProxyError(w, r, err, "falha ao listar subs")
			return
		}

		respondJSON(w, http.StatusOK, SubListResponse{Subs: options})
	})
}

// ListCampaignSubs lista apenas os slots com dados na campanha, rotulados com
// os apelidos da fonte de tráfego.
func ListCampaignSubs(service subs.SubResolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("campaignId")
		logger.WithField("campaign_id", campaignID).Info("subs: listagem por campanha")

		options, err := service.ListSubOptions(campaignID)
		if err != nil {
			respondProxyError(w, r, err, "falha ao listar subs da campanha")
			return
		}

		respondJSON(w, http.StatusOK, SubListResponse{Subs: options})
	})
}
