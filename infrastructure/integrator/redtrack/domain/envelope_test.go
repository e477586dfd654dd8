package redtrackdomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyEnvelope(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Envelope
	}{
		{
			name:     "Array direto",
			body:     `[{"id":"a"},{"id":"b"}]`,
			expected: EnvelopeList,
		},
		{
			name:     "Array direto com espaços iniciais",
			body:     "\n\t [{\"id\":\"a\"}]",
			expected: EnvelopeList,
		},
		{
			name:     "Envelope items",
			body:     `{"items":[{"id":"a"}],"total":1}`,
			expected: EnvelopeItems,
		},
		{
			name:     "Envelope data",
			body:     `{"data":[{"id":"a"}]}`,
			expected: EnvelopeData,
		},
		{
			name:     "Envelope tracks",
			body:     `{"tracks":[{"id":"a"}]}`,
			expected: EnvelopeTracks,
		},
		{
			name:     "items tem prioridade sobre data",
			body:     `{"items":[{"id":"a"}],"data":[{"id":"b"}]}`,
			expected: EnvelopeItems,
		},
		{
			name:     "data tem prioridade sobre tracks",
			body:     `{"data":[{"id":"a"}],"tracks":[{"id":"b"}]}`,
			expected: EnvelopeData,
		},
		{
			name:     "items que não é array não conta",
			body:     `{"items":"nada","data":[{"id":"a"}]}`,
			expected: EnvelopeData,
		},
		{
			name:     "Objeto sem campo conhecido",
			body:     `{"total":10,"status":"ok"}`,
			expected: EnvelopeUnknown,
		},
		{
			name:     "Corpo que não é JSON",
			body:     `not json at all`,
			expected: EnvelopeUnknown,
		},
		{
			name:     "Corpo vazio",
			body:     ``,
			expected: EnvelopeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyEnvelope([]byte(tt.body)))
		})
	}
}

func TestUnwrapRecords(t *testing.T) {
	// O mesmo conjunto lógico de registros deve sair igual de qualquer
	// envelope conhecido.
	bodies := map[string]string{
		"array":  `[{"id":"a"},{"id":"b"}]`,
		"items":  `{"items":[{"id":"a"},{"id":"b"}]}`,
		"data":   `{"data":[{"id":"a"},{"id":"b"}]}`,
		"tracks": `{"tracks":[{"id":"a"},{"id":"b"}]}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			records, shape := UnwrapRecords([]byte(body))

			assert.NotEqual(t, EnvelopeUnknown, shape)
			assert.Len(t, records, 2)
			assert.Equal(t, "a", records[0].String("id"))
			assert.Equal(t, "b", records[1].String("id"))
		})
	}

	t.Run("Formato desconhecido devolve lista vazia sem erro", func(t *testing.T) {
		records, shape := UnwrapRecords([]byte(`{"unexpected":true}`))

		assert.Equal(t, EnvelopeUnknown, shape)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("Registros não objetos devolvem lista vazia", func(t *testing.T) {
		records, shape := UnwrapRecords([]byte(`["a","b"]`))

		assert.Equal(t, EnvelopeUnknown, shape)
		assert.Empty(t, records)
	})
}

func TestRecordString(t *testing.T) {
	record := Record{
		"clickid":    "abc123",
		"click_id":   "ignored",
		"created_at": "2026-01-05T10:00:00Z",
		"serial":     float64(42),
		"empty":      nil,
	}

	t.Run("Primeira chave definida vence", func(t *testing.T) {
		assert.Equal(t, "abc123", record.String("clickid", "click_id", "id"))
	})

	t.Run("Cadeia pula chaves ausentes e nulas", func(t *testing.T) {
		assert.Equal(t, "abc123", record.String("missing", "empty", "clickid"))
	})

	t.Run("Número vira string sem casas decimais espúrias", func(t *testing.T) {
		assert.Equal(t, "42", record.String("serial"))
	})

	t.Run("Nenhuma chave casa devolve vazio", func(t *testing.T) {
		assert.Equal(t, "", record.String("missing", "empty"))
	})
}

func TestRecordHasValue(t *testing.T) {
	record := Record{
		"sub1": "facebook",
		"sub2": "",
		"sub3": nil,
		"sub5": float64(0),
	}

	assert.True(t, record.HasValue("sub1"))
	assert.False(t, record.HasValue("sub2"), "string vazia não conta como dado")
	assert.False(t, record.HasValue("sub3"), "null não conta como dado")
	assert.False(t, record.HasValue("sub4"), "chave ausente não conta como dado")
	assert.True(t, record.HasValue("sub5"), "zero numérico é valor presente")
}
