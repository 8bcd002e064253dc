package models

import (
	"strconv"
	"strings"
)

// Flag aceita 1/0, "1"/"0" ou booleano — os avisos chegam em formatos variados.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)

	switch s {
	case "true":
		*f = true
		return nil
	case "false", "", "null":
		*f = false
		return nil
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = false
		return nil
	}
	*f = n == 1
	return nil
}

type User struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Telefone string `json:"telefone,omitempty"`
	Foto     string `json:"foto,omitempty"`

	RaioBusca float64 `json:"raio_busca,omitempty"`
	Aviso24h  Flag    `json:"aviso_24h"`
	Aviso2h   Flag    `json:"aviso_2h"`

	Enderecos []Address `json:"enderecos,omitempty"`
}
