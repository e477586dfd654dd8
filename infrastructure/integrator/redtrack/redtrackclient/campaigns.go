package redtrackclient

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	redtrackdomain "github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/domain"
)

// ListCampaigns busca todas as campanhas cadastradas no RedTrack.
func (c *RedTrackClient) ListCampaigns() ([]redtrackdomain.Campaign, error) {
	url, err := c.endpoint("/campaigns", nil)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("redtrack: erro ao criar a requisição de campanhas")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("redtrack: erro ao buscar campanhas")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp, "Failed to fetch campaigns")
	if err != nil {
		return nil, err
	}

	records, shape := redtrackdomain.UnwrapRecords(body)
	if shape == redtrackdomain.EnvelopeUnknown {
		logrus.Warn("redtrack: formato inesperado na resposta de campanhas")
	}

	campaigns := make([]redtrackdomain.Campaign, 0, len(records))
	for _, record := range records {
		campaigns = append(campaigns, redtrackdomain.CampaignFromRecord(record))
	}

	logrus.WithFields(logrus.Fields{
		"total":    len(campaigns),
		"envelope": shape.String(),
	}).Debug("redtrack: campanhas carregadas")

	return campaigns, nil
}
