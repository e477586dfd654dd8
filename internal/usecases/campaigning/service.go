package campaigning

import (
	"sort"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/redtrackclient"
	"github.com/vfg2006/campaign-cost-api/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// searchLookbackDays é a janela usada na busca indireta via relatório. Larga
// de propósito: só precisa conter alguma linha da campanha.
const searchLookbackDays = 365

type CampaignResolver interface {
	ListCampaigns() ([]*domain.Campaign, error)

	// ResolveSerialNumber resolve o apelido numérico de uma campanha. Miss não
	// é erro: o chamador usa o identificador original como está.
	ResolveSerialNumber(campaignID string) (string, bool)

	SearchCampaignByReport(campaignID string) (*domain.Campaign, error)
}

type Service struct {
	client redtrackclient.Client
}

func NewService(client redtrackclient.Client) CampaignResolver {
	return &Service{client: client}
}

// ListCampaigns busca as campanhas do RedTrack na forma simplificada da UI,
// ordenadas por nome com comparação sensível a localidade.
func (s *Service) ListCampaigns() ([]*domain.Campaign, error) {
	gatewayCampaigns, err := s.client.ListCampaigns()
	if err != nil {
		logrus.WithError(err).Error("campanhas: falha ao buscar lista no RedTrack")
		return nil, err
	}

	campaigns := make([]*domain.Campaign, 0, len(gatewayCampaigns))
	for _, gc := range gatewayCampaigns {
		serialNumber, _ := strconv.Atoi(gc.SerialNumber)
		campaigns = append(campaigns, &domain.Campaign{
			ID:           gc.ID,
			SerialNumber: serialNumber,
			Name:         gc.Title,
		})
	}

	// Collator não é seguro para uso concorrente, então é criado por chamada.
	collator := collate.New(language.Und)
	sort.SliceStable(campaigns, func(i, j int) bool {
		return collator.CompareString(campaigns[i].Name, campaigns[j].Name) < 0
	})

	logrus.WithField("total", len(campaigns)).Info("campanhas: lista carregada")

	return campaigns, nil
}

// ResolveSerialNumber varre a lista de campanhas procurando o id. Falha de
// consulta ou campanha ausente viram miss, nunca erro: o custo segue com o
// identificador original.
func (s *Service) ResolveSerialNumber(campaignID string) (string, bool) {
	gatewayCampaigns, err := s.client.ListCampaigns()
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).
			Warn("campanhas: falha ao resolver serial number, usando o id original")
		return "", false
	}

	for _, gc := range gatewayCampaigns {
		if gc.ID == campaignID && gc.SerialNumber != "" {
			logrus.WithFields(logrus.Fields{
				"campaign_id":   campaignID,
				"serial_number": gc.SerialNumber,
			}).Debug("campanhas: serial number resolvido")
			return gc.SerialNumber, true
		}
	}

	return "", false
}

// SearchCampaignByReport resolve a identidade de uma campanha indiretamente,
// via relatório agrupado por campanha: alguns deployments do RedTrack não
// expõem consulta direta por id. Nenhuma linha devolve nil, não erro.
func (s *Service) SearchCampaignByReport(campaignID string) (*domain.Campaign, error) {
	now := time.Now().UTC()

	rows, err := s.client.GetReport(redtrackclient.ReportParams{
		Group:      "campaign",
		DateFrom:   now.AddDate(0, 0, -searchLookbackDays).Format(time.DateOnly),
		DateTo:     now.Format(time.DateOnly),
		CampaignID: campaignID,
		Per:        100,
	})
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).
			Error("campanhas: falha na busca por relatório")
		return nil, err
	}

	if len(rows) == 0 {
		logrus.WithField("campaign_id", campaignID).Info("campanhas: nenhuma linha de relatório encontrada")
		return nil, nil
	}

	row := rows[0]
	serialNumber, _ := row.Number("serial_number")

	return &domain.Campaign{
		ID:           row.String("campaign_id", "id"),
		SerialNumber: int(serialNumber),
		Name:         row.String("campaign", "campaign_name", "title"),
	}, nil
}
