package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	redtrackdomain "github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/domain"
	"github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/redtrackclient"
	"github.com/vfg2006/campaign-cost-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("handler: falha ao codificar resposta")
	}
}

// respondProxyError traduz falhas das operações do RedTrack para a borda da
// API: configuração ausente e falhas inesperadas viram 500 genérico, rejeição
// do RedTrack repassa status e mensagem como vieram. Detalhe interno de rede
// nunca vaza para a UI.
func respondProxyError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	logger := log.ForContext(r.Context())

	if errors.Is(err, redtrackclient.ErrAPIKeyNotConfigured) {
		logger.Error("handler: chave de API do RedTrack ausente")
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "API key not configured"})
		return
	}

	var upstreamErr *redtrackdomain.UpstreamError
	if errors.As(err, &upstreamErr) {
		logger.WithFields(log.Fields{
			"status": upstreamErr.StatusCode,
			"error":  upstreamErr.Message,
		}).Warn("handler: RedTrack rejeitou a requisição")
		respondJSON(w, upstreamErr.StatusCode, errorResponse{Error: upstreamErr.Message})
		return
	}

	logger.WithError(err).Errorf("handler: %s", fallbackMessage)
	respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
}
