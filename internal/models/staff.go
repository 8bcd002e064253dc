package models

// Colaborador capacitado para um serviço.
type Staff struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`

	Foto           string  `json:"foto,omitempty"`
	Telefone       string  `json:"telefone,omitempty"`
	LinkPortfolio  *string `json:"link_portfolio,omitempty"`
	Especialidades string  `json:"especialidades,omitempty"`
}
