package models

// Categoria de serviço, com os três tons usados pelo tema das telas.
type Category struct {
	ID   uint   `json:"id"`
	Nome string `json:"nome"`

	CorProfundo string `json:"cor_profundo"`
	CorPastel   string `json:"cor_pastel"`
	CorVivido   string `json:"cor_vivido"`
}
