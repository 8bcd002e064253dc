package models

type Service struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`

	Descricao         string `json:"descricao,omitempty"`
	Imagem            string `json:"imagem,omitempty"`
	TempoMedioDuracao string `json:"tempo_medio_duracao,omitempty"`
	Preco             Price  `json:"preco"`

	Categoria *Category `json:"categoria,omitempty"`

	// Roster de profissionais aptos; vazio significa "qualquer profissional".
	ColaboradoresCapacitados []Staff `json:"colaboradores_capacitados,omitempty"`
}
