package redtrackclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	redtrackdomain "github.com/vfg2006/campaign-cost-api/infrastructure/integrator/redtrack/domain"
)

// ErrAPIKeyNotConfigured indica ausência da chave de API no ambiente. É erro
// de configuração: nunca é retentado e vira 500 em toda rota que depende do
// RedTrack.
var ErrAPIKeyNotConfigured = errors.New("chave de API do RedTrack não configurada")

// errorBody é o corpo de erro que o RedTrack costuma devolver. "costuma"
// porque nem toda rejeição vem com JSON válido.
type errorBody struct {
	Error string `json:"error"`
}

// endpoint monta a URL completa de um endpoint com a api_key e os demais
// parâmetros de consulta.
func (c *RedTrackClient) endpoint(path string, query url.Values) (string, error) {
	if c.cfg.RedTrack.APIKey == "" {
		return "", ErrAPIKeyNotConfigured
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.cfg.RedTrack.APIKey)

	return fmt.Sprintf("%s%s?%s", c.cfg.RedTrack.BaseURL, path, query.Encode()), nil
}

// handleResponse lê o corpo e converte status não 2xx em UpstreamError com a
// mensagem da API, caindo para fallbackMessage quando o corpo não é
// interpretável. O status é preservado para repasse ao chamador.
func (c *RedTrackClient) handleResponse(resp *http.Response, fallbackMessage string) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr errorBody
		// Corpo não interpretável não é erro aqui: usamos a mensagem padrão.
		_ = json.Unmarshal(body, &apiErr)

		return nil, redtrackdomain.NewUpstreamError(resp.StatusCode, apiErr.Error, fallbackMessage)
	}

	return body, nil
}
