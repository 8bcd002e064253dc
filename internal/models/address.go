package models

type Address struct {
	ID uint `json:"id"`

	Nome        string `json:"nome"`
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento,omitempty"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
}

// Label monta o rótulo exibido no perfil e guardado no cache local.
func (a Address) Label() string {
	return a.Logradouro + ", " + a.Numero + " - " + a.Bairro + ", " + a.Cidade + " - " + a.Estado
}
