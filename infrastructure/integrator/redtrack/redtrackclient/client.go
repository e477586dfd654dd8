package redtrackclient

import (
	"net/http"
	"time"

	redtrackdomain "github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/domain"
	"github.com/vfg2006/campaign-cost-api/internal/config"
)

type Client interface {
	ListCampaigns() ([]redtrackdomain.Campaign, error)
	GetReport(params ReportParams) ([]redtrackdomain.Record, error)
	ListTracks(params TrackParams) ([]redtrackdomain.Record, error)
	UpdateCost(params CostParams) error
	CreateConversion(params ConversionParams) error
	ListSources() ([]redtrackdomain.Source, error)
}

type RedTrackClient struct {
	httpClient *http.Client
	cfg        *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &RedTrackClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg: cfg,
	}
}
