package converting

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/redtrackclient"
	"github.com/vfg2006/campaign-cost-api/pkg/utils"
)

// defaultConversionType é usado quando a UI não informa o tipo do evento.
const defaultConversionType = "Conversion"

// RevenueUpdateInput é o pedido de ajuste de receita para um clique.
type RevenueUpdateInput struct {
	CampaignID string  `json:"campaign_id"`
	ClickID    string  `json:"clickid"`
	Payout     float64 `json:"payout"`
	Type       string  `json:"type"`
}

type RevenueSubmitter interface {
	UpdateRevenue(input RevenueUpdateInput) error
}

type Service struct {
	client redtrackclient.Client
}

func NewService(client redtrackclient.Client) RevenueSubmitter {
	return &Service{client: client}
}

// UpdateRevenue registra a conversão no RedTrack. A alternância entre corpo
// em array e objeto simples fica no cliente; aqui só se monta o evento com o
// tipo padrão e o timestamp atual.
func (s *Service) UpdateRevenue(input RevenueUpdateInput) error {
	referenceID, _ := utils.GenerateID()

	logger := logrus.WithFields(logrus.Fields{
		"reference_id": referenceID,
		"campaign_id":  input.CampaignID,
		"clickid":      input.ClickID,
		"payout":       input.Payout,
	})

	conversionType := strings.TrimSpace(input.Type)
	if conversionType == "" {
		conversionType = defaultConversionType
	}

	params := redtrackclient.ConversionParams{
		CampaignID: input.CampaignID,
		ClickID:    input.ClickID,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		Payout:     input.Payout,
		Type:       conversionType,
	}

	logger.Debug("receita: enviando conversão ", utils.PrettyJson(params))

	if err := s.client.CreateConversion(params); err != nil {
		logger.WithError(err).Error("receita: ajuste rejeitado")
		return err
	}

	logger.Info("receita: ajuste aplicado")

	return nil
}
