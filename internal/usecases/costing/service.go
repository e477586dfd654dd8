package costing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/redtrackclient"
	"github.com/vfg2006/campaign-cost-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-cost-api/pkg/utils"
)

// A API de custo só aceita USD.
const costCurrency = "USD"

// CostUpdateInput é o pedido de correção de custo vindo da UI. Os filtros
// opcionais só vão ao RedTrack quando preenchidos: omissão, nunca string
// vazia.
type CostUpdateInput struct {
	CampaignID  string  `json:"campaign_id"`
	DateFrom    string  `json:"time_from"`
	DateTo      string  `json:"time_to"`
	Cost        float64 `json:"cost"`
	CountryCode string  `json:"country_code"`
	SubName     string  `json:"sub_name"`
	SubValue    string  `json:"sub_value"`
}

type CostSubmitter interface {
	UpdateCost(input CostUpdateInput) error
}

type Service struct {
	client    redtrackclient.Client
	campaigns campaigning.CampaignResolver
}

func NewService(client redtrackclient.Client, campaigns campaigning.CampaignResolver) CostSubmitter {
	return &Service{
		client:    client,
		campaigns: campaigns,
	}
}

// UpdateCost resolve o serial number da campanha (caindo para o id original
// quando não há match), normaliza o período para timestamps UTC e envia a
// correção em um único POST. Sem retry: rejeição é repassada como veio.
func (s *Service) UpdateCost(input CostUpdateInput) error {
	referenceID, _ := utils.GenerateID()

	logger := logrus.WithFields(logrus.Fields{
		"reference_id": referenceID,
		"campaign_id":  input.CampaignID,
		"cost":         input.Cost,
	})

	campaignID := input.CampaignID
	if serial, ok := s.campaigns.ResolveSerialNumber(input.CampaignID); ok {
		campaignID = serial
	} else {
		logger.Warn("custo: campanha sem serial number, enviando o id original")
	}

	timeFrom, timeTo, err := utils.DayBounds(input.DateFrom, input.DateTo)
	if err != nil {
		return err
	}

	err = s.client.UpdateCost(redtrackclient.CostParams{
		TimeFrom:    timeFrom,
		TimeTo:      timeTo,
		Cost:        utils.RoundWithTwoDecimalPlace(input.Cost),
		CampaignID:  campaignID,
		Currency:    costCurrency,
		CountryCode: input.CountryCode,
		SubName:     input.SubName,
		SubValue:    input.SubValue,
	})
	if err != nil {
		logger.WithError(err).Error("custo: correção rejeitada")
		return err
	}

	logger.Info("custo: correção aplicada")

	return nil
}
