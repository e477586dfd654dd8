package domain

// Click identifica o alvo de atribuição de uma conversão. CreatedAt fica como
// string: o timestamp é repassado à UI exatamente como o RedTrack devolveu.
type Click struct {
	ClickID      string `json:"clickid"`
	CreatedAt    string `json:"created_at"`
	CampaignName string `json:"campaign_name"`
}
