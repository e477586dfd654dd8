package redtrackclient

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	redtrackdomain "github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/domain"
)

// ListSources busca as fontes de tráfego com seus apelidos de sub-parâmetro.
func (c *RedTrackClient) ListSources() ([]redtrackdomain.Source, error) {
	url, err := c.endpoint("/sources", nil)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("redtrack: erro ao criar a requisição de fontes")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("redtrack: erro ao buscar fontes de tráfego")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.handleResponse(resp, "Failed to fetch sources")
	if err != nil {
		return nil, err
	}

	records, shape := redtrackdomain.UnwrapRecords(body)

	sources := make([]redtrackdomain.Source, 0, len(records))
	for _, record := range records {
		sources = append(sources, redtrackdomain.SourceFromRecord(record))
	}

	logrus.WithFields(logrus.Fields{
		"total":    len(sources),
		"envelope": shape.String(),
	}).Debug("redtrack: fontes de tráfego carregadas")

	return sources, nil
}
