package redtrackclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	redtrackdomain "github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/domain"
)

type TrackParams struct {
	TimeFrom   string
	TimeTo     string
	CampaignID string
	Per        int
}

// ListTracks busca os registros de clique de uma campanha no período.
func (c *RedTrackClient) ListTracks(params TrackParams) ([]redtrackdomain.Record, error) {
	query := url.Values{}
	query.Set("date_from", params.TimeFrom)
	query.Set("date_to", params.TimeTo)
	query.Set("campaign_id", params.CampaignID)
	query.Set("per", strconv.Itoa(params.Per))

	url, err := c.endpoint("/tracks", query)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("redtrack: erro ao criar a requisição de cliques")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("redtrack: erro ao buscar cliques")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp, "Failed to fetch clicks")
	if err != nil {
		return nil, err
	}

	records, shape := redtrackdomain.UnwrapRecords(body)

	logrus.WithFields(logrus.Fields{
		"campaign_id": params.CampaignID,
		"total":       len(records),
		"envelope":    shape.String(),
	}).Debug("redtrack: cliques carregados")

	return records, nil
}
