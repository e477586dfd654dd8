package redtrackdomain

// SourceSub é um slot de sub-parâmetro na definição de uma fonte de tráfego.
// "alias" é o nome configurado pelo operador; "hint" é a sugestão padrão da
// plataforma quando não há alias.
type SourceSub struct {
	Alias string `json:"alias"`
	Hint  string `json:"hint"`
}

// Source é uma fonte de tráfego do RedTrack. A ordem de Subs é posicional:
// o índice N corresponde ao slot subN+1.
type Source struct {
	ID    string      `json:"id"`
	Title string      `json:"title"`
	Subs  []SourceSub `json:"subs"`
}

// SourceFromRecord monta a fonte a partir de um registro de listagem.
func SourceFromRecord(r Record) Source {
	source := Source{
		ID:    r.String("id", "_id"),
		Title: r.String("title", "name"),
	}

	rawSubs, ok := r["subs"].([]any)
	if !ok {
		return source
	}

	for _, rawSub := range rawSubs {
		subMap, ok := rawSub.(map[string]any)
		if !ok {
			source.Subs = append(source.Subs, SourceSub{})
			continue
		}

		sub := Record(subMap)
		source.Subs = append(source.Subs, SourceSub{
			Alias: sub.String("alias"),
			Hint:  sub.String("hint"),
		})
	}

	return source
}
