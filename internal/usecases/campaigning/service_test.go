package campaigning

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	redtrackdomain "github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/domain"
	"github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/mocks"
	"go.uber.org/mock/gomock"
)

func TestListCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().ListCampaigns().Return([]redtrackdomain.Campaign{
		{ID: "c3", SerialNumber: "3", Title: "Zebra"},
		{ID: "c1", SerialNumber: "1", Title: "Ação"},
		{ID: "c2", SerialNumber: "", Title: "Beta"},
	}, nil)

	campaigns, err := NewService(client).ListCampaigns()

	require.NoError(t, err)
	require.Len(t, campaigns, 3)

	// Ordenação sensível a localidade: "Ação" vem antes de "Beta".
	assert.Equal(t, "Ação", campaigns[0].Name)
	assert.Equal(t, "Beta", campaigns[1].Name)
	assert.Equal(t, "Zebra", campaigns[2].Name)

	assert.Equal(t, 1, campaigns[0].SerialNumber)
	assert.Equal(t, 0, campaigns[1].SerialNumber, "serial ausente vira zero")
}

func TestListCampaignsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().ListCampaigns().Return(nil, errors.New("boom"))

	_, err := NewService(client).ListCampaigns()

	assert.Error(t, err)
}

func TestResolveSerialNumber(t *testing.T) {
	campaigns := []redtrackdomain.Campaign{
		{ID: "camp_123", SerialNumber: "42", Title: "X"},
		{ID: "camp_456", SerialNumber: "", Title: "Y"},
	}

	tests := []struct {
		name       string
		campaignID string
		setup      func(client *mocks.MockClient)
		expected   string
		found      bool
	}{
		{
			name:       "Campanha com serial resolve",
			campaignID: "camp_123",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().ListCampaigns().Return(campaigns, nil)
			},
			expected: "42",
			found:    true,
		},
		{
			name:       "Campanha sem serial é miss",
			campaignID: "camp_456",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().ListCampaigns().Return(campaigns, nil)
			},
			found: false,
		},
		{
			name:       "Campanha desconhecida é miss",
			campaignID: "camp_999",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().ListCampaigns().Return(campaigns, nil)
			},
			found: false,
		},
		{
			name:       "Falha de consulta vira miss, não erro",
			campaignID: "camp_123",
			setup: func(client *mocks.MockClient) {
				client.EXPECT().ListCampaigns().Return(nil, errors.New("boom"))
			},
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)
			tt.setup(client)

			serial, found := NewService(client).ResolveSerialNumber(tt.campaignID)

			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, serial)
		})
	}
}

func TestSearchCampaignByReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().GetReport(gomock.Any()).Return([]redtrackdomain.Record{
		{
			"campaign_id":   "camp_123",
			"campaign":      "Black Friday",
			"serial_number": float64(42),
		},
	}, nil)

	campaign, err := NewService(client).SearchCampaignByReport("camp_123")

	require.NoError(t, err)
	require.NotNil(t, campaign)
	assert.Equal(t, "camp_123", campaign.ID)
	assert.Equal(t, "Black Friday", campaign.Name)
	assert.Equal(t, 42, campaign.SerialNumber)
}

func TestSearchCampaignByReportNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().GetReport(gomock.Any()).Return([]redtrackdomain.Record{}, nil)

	campaign, err := NewService(client).SearchCampaignByReport("camp_999")

	require.NoError(t, err)
	assert.Nil(t, campaign, "nenhuma linha devolve nil, não erro")
}
