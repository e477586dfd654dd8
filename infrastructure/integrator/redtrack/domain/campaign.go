package redtrackdomain

// Campaign é a campanha como o RedTrack a devolve: "id" é o identificador
// opaco e "serial_number" é o apelido numérico que alguns endpoints exigem no
// lugar do id.
type Campaign struct {
	ID           string `json:"id"`
	SerialNumber string `json:"serial_number"`
	Title        string `json:"title"`
}

// CampaignFromRecord monta a campanha a partir de um registro de listagem.
// serial_number às vezes chega como número, às vezes como string.
func CampaignFromRecord(r Record) Campaign {
	return Campaign{
		ID:           r.String("id", "_id"),
		SerialNumber: r.String("serial_number"),
		Title:        r.String("title", "name"),
	}
}
