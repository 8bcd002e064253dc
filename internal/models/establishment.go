package models

type GalleryPhoto struct {
	Foto string `json:"foto"`
}

type Establishment struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`

	Descricao string `json:"descricao,omitempty"`

	Logradouro string `json:"logradouro,omitempty"`
	Numero     string `json:"numero,omitempty"`
	Bairro     string `json:"bairro,omitempty"`
	Cidade     string `json:"cidade,omitempty"`
	Estado     string `json:"estado,omitempty"`
	CEP        string `json:"cep,omitempty"`
	Endereco   string `json:"endereco,omitempty"`

	Telefone string `json:"telefone,omitempty"`
	Email    string `json:"email,omitempty"`

	Imagem  string         `json:"imagem,omitempty"`
	Galeria []GalleryPhoto `json:"galeria,omitempty"`

	AvaliacaoMedia *float64 `json:"avaliacao_media,omitempty"`

	// Calculada pelo servidor a partir das coordenadas enviadas; ausente sem localização.
	Distancia *float64 `json:"distancia,omitempty"`

	Lat  string `json:"lat,omitempty"`
	Long string `json:"long,omitempty"`

	Servicos []Service `json:"servicos,omitempty"`
}
