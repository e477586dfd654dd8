package subs

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	redtrackdomain "github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/domain"
	"github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/mocks"
	"github.com/vfg2006/campaign-cost-api/internal/config"
	"go.uber.org/mock/gomock"
)

const testSourceID = "65c405dd0de7ed0001f5d3b8"

func newTestService(client *mocks.MockClient, now func() time.Time) *Service {
	return &Service{
		cfg: &config.Config{
			RedTrack: config.RedTrack{SourceID: testSourceID},
		},
		client:   client,
		cacheTTL: 5 * time.Minute,
		now:      now,
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestListSubOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	// sub1 e sub3 têm dados; sub2 só aparece com valores vazios.
	client.EXPECT().GetReport(gomock.Any()).Return([]redtrackdomain.Record{
		{"sub1": "facebook", "sub2": "", "sub3": nil},
		{"sub1": "", "sub2": "", "sub3": "video_01"},
	}, nil)

	client.EXPECT().ListSources().Return([]redtrackdomain.Source{
		{
			ID:    testSourceID,
			Title: "Facebook Ads",
			Subs: []redtrackdomain.SourceSub{
				{Alias: "Plataforma"},
				{Alias: "", Hint: "Conjunto"},
				{Alias: "   "},
			},
		},
	}, nil)

	options, err := newTestService(client, time.Now).ListSubOptions("camp_123")

	require.NoError(t, err)
	require.Len(t, options, 2, "slots sem dados ficam de fora")

	assert.Equal(t, "sub1", options[0].Value)
	assert.Equal(t, "Sub1: Plataforma", options[0].Label)

	// Apelido em branco no slot 3 cai no rótulo genérico.
	assert.Equal(t, "sub3", options[1].Value)
	assert.Equal(t, "Sub3", options[1].Label)
}

func TestListSubOptionsHintFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().GetReport(gomock.Any()).Return([]redtrackdomain.Record{
		{"sub2": "adset_9"},
	}, nil)

	client.EXPECT().ListSources().Return([]redtrackdomain.Source{
		{
			ID:   testSourceID,
			Subs: []redtrackdomain.SourceSub{{Alias: "Plataforma"}, {Hint: "Conjunto"}},
		},
	}, nil)

	options, err := newTestService(client, time.Now).ListSubOptions("camp_123")

	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "Sub2: Conjunto", options[0].Label, "hint é o fallback do alias")
}

func TestListSubOptionsWithoutSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().GetReport(gomock.Any()).Return([]redtrackdomain.Record{
		{"sub1": "facebook"},
	}, nil)

	// Falha ao buscar fontes não derruba a listagem, só perde os apelidos.
	client.EXPECT().ListSources().Return(nil, errors.New("boom"))

	options, err := newTestService(client, time.Now).ListSubOptions("camp_123")

	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "Sub1", options[0].Label)
}

func TestListSubOptionsReportUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().GetReport(gomock.Any()).Return(nil, errors.New("boom"))
	client.EXPECT().ListSources().Return(nil, nil).AnyTimes()

	options, err := newTestService(client, time.Now).ListSubOptions("camp_123")

	require.NoError(t, err, "relatório indisponível vira lista vazia")
	assert.Empty(t, options)
}

func TestListGlobalSubOptions(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().GetReport(gomock.Any()).Return([]redtrackdomain.Record{
		{"sub1": "facebook", "sub7": "creative_3"},
	}, nil)

	options, err := newTestService(client, time.Now).ListGlobalSubOptions()

	require.NoError(t, err)

	// sub1, sub7 e os sete parâmetros fixos da plataforma.
	require.Len(t, options, 2+len(platformSubs))
	assert.Equal(t, "sub1", options[0].Value)
	assert.Equal(t, "SUB 1", options[0].Label)
	assert.Equal(t, "sub7", options[1].Value)
	assert.Equal(t, "SUB 7", options[1].Label)
	assert.Equal(t, "rt_source", options[2].Value)
	assert.Equal(t, "rt_keyword", options[len(options)-1].Value)
}

func TestCachedSourceRespectsTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	base := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	current := base

	service := newTestService(client, func() time.Time { return current })

	source := redtrackdomain.Source{ID: testSourceID, Title: "Facebook Ads"}

	// Primeira leitura busca; a segunda, dentro da janela, não.
	client.EXPECT().ListSources().Return([]redtrackdomain.Source{source}, nil)

	require.NotNil(t, service.cachedSource())

	current = base.Add(4 * time.Minute)
	require.NotNil(t, service.cachedSource(), "cache dentro da janela não rebusca")

	// Vencido o TTL, exatamente uma nova busca.
	client.EXPECT().ListSources().Return([]redtrackdomain.Source{source}, nil)

	current = base.Add(6 * time.Minute)
	require.NotNil(t, service.cachedSource())
}

func TestCachedSourceKeepsStaleValueOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	base := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)
	current := base

	service := newTestService(client, func() time.Time { return current })

	client.EXPECT().ListSources().Return([]redtrackdomain.Source{
		{ID: testSourceID, Title: "Facebook Ads"},
	}, nil)

	require.NotNil(t, service.cachedSource())

	// Rebusca falha: o valor vencido continua servindo.
	client.EXPECT().ListSources().Return(nil, errors.New("boom"))

	current = base.Add(10 * time.Minute)
	stale := service.cachedSource()

	require.NotNil(t, stale)
	assert.Equal(t, "Facebook Ads", stale.Title)
}
