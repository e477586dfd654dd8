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

type ReportParams struct {
	Group      string
	DateFrom   string
	DateTo     string
	CampaignID string
	Per        int
}

// GetReport busca linhas agregadas do relatório, agrupadas pela dimensão
// pedida. As linhas ficam como Record porque os nomes de campo variam
// conforme o agrupamento.
func (c *RedTrackClient) GetReport(params ReportParams) ([]redtrackdomain.Record, error) {
	query := url.Values{}
	query.Set("group", params.Group)
	query.Set("date_from", params.DateFrom)
	query.Set("date_to", params.DateTo)
	query.Set("per", strconv.Itoa(params.Per))
	if params.CampaignID != "" {
		query.Set("campaign_id", params.CampaignID)
	}

	url, err := c.endpoint("/report", query)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("redtrack: erro ao criar a requisição de relatório")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("redtrack: erro ao buscar relatório")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp, "Failed to fetch report")
	if err != nil {
		return nil, err
	}

	records, shape := redtrackdomain.UnwrapRecords(body)

	logrus.WithFields(logrus.Fields{
		"group":    params.Group,
		"rows":     len(records),
		"envelope": shape.String(),
	}).Debug("redtrack: relatório carregado")

	return records, nil
}
