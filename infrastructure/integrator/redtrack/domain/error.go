package redtrackdomain

import "fmt"

// UpstreamError representa uma rejeição do RedTrack: status não 2xx com a
// mensagem que a API devolveu (ou uma mensagem genérica quando o corpo não é
// JSON interpretável). O status é repassado como está para o chamador.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("redtrack respondeu %d: %s", e.StatusCode, e.Message)
}

// NewUpstreamError cria um erro de rejeição com mensagem padrão quando a API
// não forneceu nenhuma.
func NewUpstreamError(statusCode int, message, fallback string) *UpstreamError {
	if message == "" {
		message = fallback
	}

	return &UpstreamError{
		StatusCode: statusCode,
		Message:    message,
	}
}
