package redtrackclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	redtrackdomain "github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/domain"
)

type ConversionParams struct {
	CampaignID string  `json:"campaign_id"`
	ClickID    string  `json:"clickid"`
	CreatedAt  string  `json:"created_at"`
	Payout     float64 `json:"payout"`
	Type       string  `json:"type"`
}

// conversionPayloads são os formatos de corpo aceitos pelo endpoint, na ordem
// de tentativa: array de um elemento primeiro (padrão de API em lote), objeto
// simples como fallback. O endpoint já aceitou e rejeitou os dois formatos em
// momentos diferentes, então os dois são contrato.
var conversionPayloads = []func(ConversionParams) any{
	func(p ConversionParams) any { return []ConversionParams{p} },
	func(p ConversionParams) any { return p },
}

// CreateConversion registra um ajuste de receita para um clique. Não é um
// retry genérico: cada tentativa muda o formato do corpo, e o erro da última
// tentativa é o que vale; o das anteriores é descartado.
func (c *RedTrackClient) CreateConversion(params ConversionParams) error {
	url, err := c.endpoint("/conversions", nil)
	if err != nil {
		return err
	}

	var lastErr error
	for attempt, buildPayload := range conversionPayloads {
		body, err := json.Marshal(buildPayload(params))
		if err != nil {
			return err
		}

		lastErr = c.postConversion(url, body)
		if lastErr == nil {
			logrus.WithFields(logrus.Fields{
				"clickid": params.ClickID,
				"payout":  params.Payout,
				"attempt": attempt + 1,
			}).Info("redtrack: receita atualizada com sucesso")
			return nil
		}

		// Só vale a pena trocar o formato quando o RedTrack rejeitou a
		// requisição; falha de rede segue direto para o chamador.
		var upstreamErr *redtrackdomain.UpstreamError
		if !errors.As(lastErr, &upstreamErr) {
			return lastErr
		}

		logrus.WithFields(logrus.Fields{
			"clickid": params.ClickID,
			"attempt": attempt + 1,
			"status":  upstreamErr.StatusCode,
		}).Warn("redtrack: formato de conversão rejeitado, tentando o próximo")
	}

	return lastErr
}

func (c *RedTrackClient) postConversion(url string, body []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		logrus.WithError(err).Error("redtrack: erro ao criar a requisição de conversão")
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("redtrack: erro ao enviar conversão")
		return err
	}
	defer resp.Body.Close()

	_, err = c.handleResponse(resp, "Failed to update revenue")
	return err
}
