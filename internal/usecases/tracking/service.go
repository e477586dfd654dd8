package tracking

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/redtrackclient"
	"github.com/vfg2006/campaign-cost-api/internal/domain"
	"github.com/vfg2006/campaign-cost-api/pkg/utils"
)

const clicksPageSize = 100

type ClickLister interface {
	ListClicks(campaignID, dateFrom, dateTo string) ([]*domain.Click, error)
}

type Service struct {
	client redtrackclient.Client
}

func NewService(client redtrackclient.Client) ClickLister {
	return &Service{client: client}
}

// ListClicks busca os cliques de uma campanha no período. As datas de
// calendário viram o intervalo completo [00:00:00Z, 23:59:59Z]; os campos de
// cada registro passam pelas cadeias de fallback do RedTrack.
func (s *Service) ListClicks(campaignID, dateFrom, dateTo string) ([]*domain.Click, error) {
	timeFrom, timeTo, err := utils.DayBounds(dateFrom, dateTo)
	if err != nil {
		return nil, err
	}

	records, err := s.client.ListTracks(redtrackclient.TrackParams{
		TimeFrom:   timeFrom,
		TimeTo:     timeTo,
		CampaignID: campaignID,
		Per:        clicksPageSize,
	})
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).
			Error("cliques: falha ao buscar no RedTrack")
		return nil, err
	}

	clicks := make([]*domain.Click, 0, len(records))
	for _, record := range records {
		clicks = append(clicks, &domain.Click{
			ClickID:      record.String("clickid", "click_id", "id"),
			CreatedAt:    record.String("created_at", "timestamp"),
			CampaignName: record.String("campaign_name", "campaign"),
		})
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"total":       len(clicks),
	}).Info("cliques: listagem concluída")

	return clicks, nil
}
