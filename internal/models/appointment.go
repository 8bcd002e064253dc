package models

import "time"

// Agendamento como a API devolve: projeção descartável, o servidor é a fonte
// de verdade sobre data e janela exata.
type Appointment struct {
	ID uint `json:"id"`

	Data   string `json:"data"`   // YYYY-MM-DD
	Inicio string `json:"inicio"` // HH:MM ou HH:MM:SS
	Fim    string `json:"fim"`

	Status int `json:"status"`

	CreatedAt time.Time `json:"created_at"`

	Servico         Service       `json:"servico"`
	Estabelecimento Establishment `json:"estabelecimento"`
	Colaborador     *Staff        `json:"colaborador,omitempty"`
}
