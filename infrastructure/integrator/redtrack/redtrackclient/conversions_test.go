package redtrackclient

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	redtrackdomain "github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/domain"
)

func TestCreateConversionFirstFormatAccepted(t *testing.T) {
	var bodies [][]byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodies = append(bodies, body)

		assert.Equal(t, "/conversions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newTestClient(server.URL).CreateConversion(ConversionParams{
		CampaignID: "42",
		ClickID:    "abc123",
		CreatedAt:  "2026-01-05T10:00:00Z",
		Payout:     75.5,
		Type:       "Conversion",
	})

	require.NoError(t, err)
	require.Len(t, bodies, 1, "formato aceito de primeira não gera segunda tentativa")

	var payload []ConversionParams
	require.NoError(t, json.Unmarshal(bodies[0], &payload), "primeira tentativa envia array")
	require.Len(t, payload, 1)
	assert.Equal(t, "abc123", payload[0].ClickID)
	assert.Equal(t, 75.5, payload[0].Payout)
}

func TestCreateConversionFallsBackToObject(t *testing.T) {
	var bodies [][]byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodies = append(bodies, body)

		// Rejeita o array, aceita o objeto simples.
		if len(bodies) == 1 {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"expected object"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newTestClient(server.URL).CreateConversion(ConversionParams{
		CampaignID: "42",
		ClickID:    "abc123",
		CreatedAt:  "2026-01-05T10:00:00Z",
		Payout:     75.5,
		Type:       "Conversion",
	})

	require.NoError(t, err)
	require.Len(t, bodies, 2)

	var payload ConversionParams
	require.NoError(t, json.Unmarshal(bodies[1], &payload), "segunda tentativa envia objeto simples")
	assert.Equal(t, "abc123", payload.ClickID)
	assert.Equal(t, "42", payload.CampaignID)
}

func TestCreateConversionBothFormatsRejected(t *testing.T) {
	var calls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"first rejection"}`))
			return
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"second rejection"}`))
	}))
	defer server.Close()

	err := newTestClient(server.URL).CreateConversion(ConversionParams{
		CampaignID: "42",
		ClickID:    "abc123",
		Payout:     75.5,
		Type:       "Conversion",
	})

	require.Error(t, err)
	assert.Equal(t, 2, calls)

	// O erro que prevalece é o da última tentativa.
	var upstreamErr *redtrackdomain.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusUnprocessableEntity, upstreamErr.StatusCode)
	assert.Equal(t, "second rejection", upstreamErr.Message)
}
