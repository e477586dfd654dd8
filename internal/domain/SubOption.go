package domain

// SubOption é um slot de parâmetro de rastreamento oferecido à UI: "sub1" a
// "sub5" ou um dos parâmetros rt_* da plataforma. Label carrega o apelido
// humano quando a fonte de tráfego define um.
type SubOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
