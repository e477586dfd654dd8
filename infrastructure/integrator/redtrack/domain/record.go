package redtrackdomain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Record é um registro de listagem do RedTrack com os campos ainda não
// tipados. Os acessores aplicam cadeias de fallback: a API expõe o mesmo dado
// sob nomes diferentes dependendo do endpoint (ex: clickid vs click_id).
type Record map[string]any

// String devolve o primeiro valor definido e não nulo entre as chaves
// candidatas, convertido para string. Números vêm como json.Number ou float64
// dependendo do decoder, então os dois casos são cobertos.
func (r Record) String(keys ...string) string {
	for _, key := range keys {
		value, ok := r[key]
		if !ok || value == nil {
			continue
		}

		switch v := value.(type) {
		case string:
			return v
		case json.Number:
			return v.String()
		case float64:
			return formatNumber(v)
		}
	}

	return ""
}

// Number devolve o primeiro valor numérico definido entre as chaves
// candidatas, com ok=false quando nenhuma casa.
func (r Record) Number(keys ...string) (float64, bool) {
	for _, key := range keys {
		value, ok := r[key]
		if !ok || value == nil {
			continue
		}

		switch v := value.(type) {
		case float64:
			return v, true
		case json.Number:
			if f, err := v.Float64(); err == nil {
				return f, true
			}
		}
	}

	return 0, false
}

// HasValue verifica se a chave existe com um valor não nulo e não vazio.
// Usado para decidir se um sub-parâmetro realmente tem dados.
func (r Record) HasValue(key string) bool {
	value, ok := r[key]
	if !ok || value == nil {
		return false
	}

	if s, ok := value.(string); ok {
		return s != ""
	}

	return true
}

// formatNumber evita notação científica e o sufixo ".000000" ao converter
// números inteiros vindos do JSON (caso do serial_number).
func formatNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", f), "0"), ".")
}
