package redtrackclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

type CostParams struct {
	TimeFrom   string
	TimeTo     string
	Cost       float64
	CampaignID string
	Currency   string

	// Filtros opcionais. Quando vazios NÃO entram na query: o RedTrack trata
	// string vazia como filtro que não casa com nada.
	CountryCode string
	SubName     string
	SubValue    string
}

// UpdateCost aplica uma correção de custo. O endpoint recebe tudo por query
// string e responde 200 com corpo vazio em caso de sucesso; o corpo só é
// interpretado quando há erro.
func (c *RedTrackClient) UpdateCost(params CostParams) error {
	query := url.Values{}
	query.Set("time_from", params.TimeFrom)
	query.Set("time_to", params.TimeTo)
	query.Set("cost", strconv.FormatFloat(params.Cost, 'f', -1, 64))
	query.Set("campaign_id", params.CampaignID)
	query.Set("currency", params.Currency)

	if params.CountryCode != "" {
		query.Set("country_code", params.CountryCode)
	}
	if params.SubName != "" {
		query.Set("sub_name", params.SubName)
	}
	if params.SubValue != "" {
		query.Set("sub_value", params.SubValue)
	}

	url, err := c.endpoint("/tracks/cost", query)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		logrus.WithError(err).Error("redtrack: erro ao criar a requisição de custo")
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("redtrack: erro ao enviar correção de custo")
		return err
	}
	defer resp.Body.Close()

	if _, err := c.handleResponse(resp, "Failed to update cost"); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": params.CampaignID,
		"cost":        params.Cost,
	}).Info("redtrack: custo atualizado com sucesso")

	return nil
}
