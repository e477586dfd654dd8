package redtrackclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	redtrackdomain "github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/domain"
)

func TestUpdateCost(t *testing.T) {
	var received *http.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Clone(r.Context())
		// Sucesso com corpo vazio, exatamente como o endpoint se comporta.
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newTestClient(server.URL).UpdateCost(CostParams{
		TimeFrom:   "2026-01-05T00:00:00Z",
		TimeTo:     "2026-01-05T23:59:59Z",
		Cost:       150.5,
		CampaignID: "42",
		Currency:   "USD",
	})

	require.NoError(t, err)
	require.NotNil(t, received)
	assert.Equal(t, http.MethodPost, received.Method)
	assert.Equal(t, "/tracks/cost", received.URL.Path)

	query := received.URL.Query()
	assert.Equal(t, "2026-01-05T00:00:00Z", query.Get("time_from"))
	assert.Equal(t, "2026-01-05T23:59:59Z", query.Get("time_to"))
	assert.Equal(t, "150.5", query.Get("cost"))
	assert.Equal(t, "42", query.Get("campaign_id"))
	assert.Equal(t, "USD", query.Get("currency"))
	assert.Equal(t, "test-key", query.Get("api_key"))

	// Filtros opcionais vazios nunca viram parâmetro de query.
	assert.False(t, query.Has("country_code"))
	assert.False(t, query.Has("sub_name"))
	assert.False(t, query.Has("sub_value"))
}

func TestUpdateCostWithOptionalFilters(t *testing.T) {
	var received *http.Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		received = r.Clone(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newTestClient(server.URL).UpdateCost(CostParams{
		TimeFrom:    "2026-01-05T00:00:00Z",
		TimeTo:      "2026-01-05T23:59:59Z",
		Cost:        10,
		CampaignID:  "42",
		Currency:    "USD",
		CountryCode: "BR",
		SubName:     "sub1",
		SubValue:    "facebook",
	})

	require.NoError(t, err)

	query := received.URL.Query()
	assert.Equal(t, "BR", query.Get("country_code"))
	assert.Equal(t, "sub1", query.Get("sub_name"))
	assert.Equal(t, "facebook", query.Get("sub_value"))
	assert.Equal(t, "10", query.Get("cost"))
}

func TestUpdateCostUpstreamRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"campaign not found"}`))
	}))
	defer server.Close()

	err := newTestClient(server.URL).UpdateCost(CostParams{
		TimeFrom:   "2026-01-05T00:00:00Z",
		TimeTo:     "2026-01-05T23:59:59Z",
		Cost:       10,
		CampaignID: "999",
		Currency:   "USD",
	})

	var upstreamErr *redtrackdomain.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusUnprocessableEntity, upstreamErr.StatusCode)
	assert.Equal(t, "campaign not found", upstreamErr.Message)
}
