package redtrackdomain

import "encoding/json"

// Envelope identifica o formato de empacotamento que o RedTrack usou em uma
// resposta de listagem. A API não é consistente entre endpoints (e entre
// versões do mesmo endpoint): às vezes devolve o array diretamente, às vezes
// embrulhado em "items", "data" ou "tracks".
type Envelope int

const (
	EnvelopeUnknown Envelope = iota
	EnvelopeList
	EnvelopeItems
	EnvelopeData
	EnvelopeTracks
)

func (e Envelope) String() string {
	switch e {
	case EnvelopeList:
		return "list"
	case EnvelopeItems:
		return "items"
	case EnvelopeData:
		return "data"
	case EnvelopeTracks:
		return "tracks"
	default:
		return "unknown"
	}
}

// listEnvelope cobre os três campos conhecidos de embrulho. json.RawMessage
// preserva o conteúdo para decidir depois qual campo realmente é um array.
type listEnvelope struct {
	Items  json.RawMessage `json:"items"`
	Data   json.RawMessage `json:"data"`
	Tracks json.RawMessage `json:"tracks"`
}

// ClassifyEnvelope decide qual formato de resposta o RedTrack usou, na ordem
// fixa: array direto, items, data, tracks. Respostas que não casam com nenhum
// formato são classificadas como Unknown, nunca como erro.
func ClassifyEnvelope(body []byte) Envelope {
	if isJSONArray(body) {
		return EnvelopeList
	}

	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return EnvelopeUnknown
	}

	switch {
	case isJSONArray(envelope.Items):
		return EnvelopeItems
	case isJSONArray(envelope.Data):
		return EnvelopeData
	case isJSONArray(envelope.Tracks):
		return EnvelopeTracks
	default:
		return EnvelopeUnknown
	}
}

// UnwrapRecords extrai a lista de registros de uma resposta de listagem,
// qualquer que seja o envelope usado. Formato desconhecido devolve lista
// vazia: quem chama nunca precisa tratar erro de formato.
func UnwrapRecords(body []byte) ([]Record, Envelope) {
	shape := ClassifyEnvelope(body)

	var raw json.RawMessage
	switch shape {
	case EnvelopeList:
		raw = body
	case EnvelopeItems, EnvelopeData, EnvelopeTracks:
		var envelope listEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return []Record{}, EnvelopeUnknown
		}
		switch shape {
		case EnvelopeItems:
			raw = envelope.Items
		case EnvelopeData:
			raw = envelope.Data
		default:
			raw = envelope.Tracks
		}
	default:
		return []Record{}, EnvelopeUnknown
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return []Record{}, EnvelopeUnknown
	}

	return records, shape
}

// isJSONArray verifica se o fragmento JSON é um array, ignorando espaços
// iniciais.
func isJSONArray(raw json.RawMessage) bool {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
