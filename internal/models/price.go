package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Price aceita número ou string no JSON — a API serializa preço das duas formas.
type Price float64

func (p *Price) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	s = strings.Trim(s, `"`)

	if s == "" || s == "null" {
		*p = 0
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("preço inválido: %q", s)
	}

	*p = Price(v)
	return nil
}

// Display formata em reais (vírgula decimal).
func (p Price) Display() string {
	return "R$ " + strings.Replace(strconv.FormatFloat(float64(p), 'f', 2, 64), ".", ",", 1)
}
