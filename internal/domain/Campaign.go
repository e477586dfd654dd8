package domain

// Campaign é a campanha na forma simplificada que a UI consome. SerialNumber
// é o apelido numérico que o RedTrack exige em alguns endpoints no lugar do
// id; precisa estar resolvido antes de qualquer correção de custo.
type Campaign struct {
	ID           string `json:"id"`
	SerialNumber int    `json:"serial_number"`
	Name         string `json:"name"`
}
