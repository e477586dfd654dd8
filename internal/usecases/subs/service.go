package subs

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	redtrackdomain "github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/domain"
	"github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/redtrackclient"
	"github.com/vfg2006/campaign-cost-api/internal/config"
	"github.com/vfg2006/campaign-cost-api/internal/domain"
)

const (
	// Slots posicionais que uma fonte de tráfego pode apelidar.
	positionalSlots = 5

	// A listagem global varre um intervalo maior de slots: o relatório expõe
	// até sub20 mesmo sem apelido configurado.
	globalSlots = 20

	reportLookbackDays = 30
	reportPageSize     = 100
)

// platformSubs são os parâmetros fixos da plataforma, sempre anexados à
// listagem global independente de terem dados.
var platformSubs = []*domain.SubOption{
	{Value: "rt_source", Label: "RT Source"},
	{Value: "rt_medium", Label: "RT Medium"},
	{Value: "rt_campaign", Label: "RT Campaign"},
	{Value: "rt_adgroup", Label: "RT Adgroup"},
	{Value: "rt_ad", Label: "RT Ad"},
	{Value: "rt_placement", Label: "RT Placement"},
	{Value: "rt_keyword", Label: "RT Keyword"},
}

type SubResolver interface {
	// ListSubOptions devolve apenas os slots com dados na campanha, rotulados
	// com o apelido da fonte de tráfego quando existir.
	ListSubOptions(campaignID string) ([]*domain.SubOption, error)

	// ListGlobalSubOptions lista os slots com dados em qualquer campanha e
	// anexa os parâmetros rt_* da plataforma.
	ListGlobalSubOptions() ([]*domain.SubOption, error)
}

type Service struct {
	cfg    *config.Config
	client redtrackclient.Client

	cacheTTL time.Duration
	now      func() time.Time

	// Cache da fonte de tráfego. O lock protege apenas a troca do valor; a
	// busca roda fora dele, então leitores concorrentes de um cache vencido
	// podem disparar buscas duplicadas. Aceitável: o valor é idempotente.
	mu        sync.Mutex
	source    *redtrackdomain.Source
	fetchedAt time.Time
}

func NewService(cfg *config.Config, client redtrackclient.Client) SubResolver {
	return &Service{
		cfg:      cfg,
		client:   client,
		cacheTTL: cfg.SourceCache.TTL,
		now:      time.Now,
	}
}

func (s *Service) ListSubOptions(campaignID string) ([]*domain.SubOption, error) {
	slotsWithData, err := s.subsWithData(campaignID)
	if err != nil {
		return nil, err
	}

	labels := s.resolveLabels()

	options := make([]*domain.SubOption, 0, positionalSlots)
	for i := 1; i <= positionalSlots; i++ {
		slot := fmt.Sprintf("sub%d", i)
		if !slotsWithData[slot] {
			continue
		}

		label := fmt.Sprintf("Sub%d", i)
		if alias, ok := labels[slot]; ok {
			label = fmt.Sprintf("Sub%d: %s", i, alias)
		}

		options = append(options, &domain.SubOption{Value: slot, Label: label})
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"total":       len(options),
	}).Info("subs: opções resolvidas para a campanha")

	return options, nil
}

func (s *Service) ListGlobalSubOptions() ([]*domain.SubOption, error) {
	rows, err := s.reportBySubs("")
	if err != nil {
		return nil, err
	}

	options := make([]*domain.SubOption, 0, globalSlots+len(platformSubs))
	for i := 1; i <= globalSlots; i++ {
		slot := fmt.Sprintf("sub%d", i)
		if !slotHasData(rows, slot) {
			continue
		}

		options = append(options, &domain.SubOption{
			Value: slot,
			Label: fmt.Sprintf("SUB %d", i),
		})
	}

	options = append(options, platformSubs...)

	return options, nil
}

// subsWithData consulta o relatório agrupado pelos slots posicionais e marca
// como usado todo slot com algum valor não vazio no período. Distingue
// parâmetro que existe como esquema de parâmetro realmente populado.
func (s *Service) subsWithData(campaignID string) (map[string]bool, error) {
	rows, err := s.reportBySubs(campaignID)
	if err != nil {
		return nil, err
	}

	slots := make(map[string]bool, positionalSlots)
	for i := 1; i <= positionalSlots; i++ {
		slot := fmt.Sprintf("sub%d", i)
		if slotHasData(rows, slot) {
			slots[slot] = true
		}
	}

	return slots, nil
}

// reportBySubs consulta o relatório agrupado pelos cinco slots posicionais.
// O agrupamento é sempre sub1..sub5; o chamador decide até qual slot varrer
// nas linhas devolvidas.
func (s *Service) reportBySubs(campaignID string) ([]redtrackdomain.Record, error) {
	groups := make([]string, 0, positionalSlots)
	for i := 1; i <= positionalSlots; i++ {
		groups = append(groups, fmt.Sprintf("sub%d", i))
	}

	now := s.now().UTC()

	rows, err := s.client.GetReport(redtrackclient.ReportParams{
		Group:      strings.Join(groups, ","),
		DateFrom:   now.AddDate(0, 0, -reportLookbackDays).Format(time.DateOnly),
		DateTo:     now.Format(time.DateOnly),
		CampaignID: campaignID,
		Per:        reportPageSize,
	})
	if err != nil {
		// Configuração ausente é terminal; rejeição do relatório vira lista
		// vazia, como qualquer lookup sem resultado.
		if errors.Is(err, redtrackclient.ErrAPIKeyNotConfigured) {
			return nil, err
		}

		logrus.WithError(err).WithField("campaign_id", campaignID).
			Warn("subs: relatório indisponível, seguindo sem slots")
		return nil, nil
	}

	return rows, nil
}

func slotHasData(rows []redtrackdomain.Record, slot string) bool {
	for _, row := range rows {
		if row.HasValue(slot) {
			return true
		}
	}
	return false
}

// resolveLabels monta o mapa slot → apelido a partir da fonte de tráfego em
// cache: alias quando configurado, hint como fallback, slots com apelido em
// branco ficam de fora.
func (s *Service) resolveLabels() map[string]string {
	source := s.cachedSource()
	if source == nil {
		return map[string]string{}
	}

	labels := make(map[string]string, len(source.Subs))
	for i, sub := range source.Subs {
		alias := sub.Alias
		if alias == "" {
			alias = sub.Hint
		}

		if strings.TrimSpace(alias) == "" {
			continue
		}

		labels[fmt.Sprintf("sub%d", i+1)] = alias
	}

	return labels
}

// cachedSource devolve a fonte de tráfego, rebuscando quando o cache venceu.
// Falha na busca mantém o cache anterior (mesmo vencido): apelido desatualizado
// é melhor que nenhum.
func (s *Service) cachedSource() *redtrackdomain.Source {
	s.mu.Lock()
	source := s.source
	fetchedAt := s.fetchedAt
	s.mu.Unlock()

	if !fetchedAt.IsZero() && s.now().Sub(fetchedAt) <= s.cacheTTL {
		return source
	}

	logrus.Debug("subs: cache da fonte de tráfego vencido, rebuscando")

	sources, err := s.client.ListSources()
	if err != nil {
		logrus.WithError(err).Warn("subs: falha ao rebuscar fontes de tráfego")
		return source
	}

	var found *redtrackdomain.Source
	for i := range sources {
		if sources[i].ID == s.cfg.RedTrack.SourceID {
			found = &sources[i]
			break
		}
	}

	if found == nil {
		logrus.WithField("source_id", s.cfg.RedTrack.SourceID).
			Warn("subs: fonte de tráfego configurada não encontrada")
	}

	s.mu.Lock()
	s.source = found
	s.fetchedAt = s.now()
	s.mu.Unlock()

	return found
}
