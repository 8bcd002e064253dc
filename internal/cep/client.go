package cep

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/agenda-client/internal/httperr"
	"github.com/BruksfildServices01/agenda-client/internal/models"
)

// Result é a resposta do serviço de CEP, já nos nomes que o formulário de
// endereço consome.
type Result struct {
	CEP        string      `json:"cep"`
	Logradouro string      `json:"logradouro"`
	Bairro     string      `json:"bairro"`
	Localidade string      `json:"localidade"`
	UF         string      `json:"uf"`
	Erro       models.Flag `json:"erro"`
}

// Client consulta o serviço externo de CEP. Dado postal é estático, então a
// resposta fica num cache com TTL — diferente dos dados de agenda, que nunca
// são cacheados.
type Client struct {
	baseURL string
	http    *http.Client
	cache   *cache.Cache
	log     zerolog.Logger
}

func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		cache:   cache.New(24*time.Hour, time.Hour),
		log:     log,
	}
}

// Lookup resolve um CEP de 8 dígitos para logradouro/bairro/cidade/UF.
func (c *Client) Lookup(ctx context.Context, rawCEP string) (*Result, error) {
	digits := onlyDigits(rawCEP)
	if len(digits) != 8 {
		return nil, httperr.ErrBusiness("invalid_cep")
	}

	if cached, ok := c.cache.Get(digits); ok {
		result := cached.(Result)
		return &result, nil
	}

	url := fmt.Sprintf("%s/%s/json/", c.baseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Str("cep", digits).Err(err).Msg("consulta de CEP falhou")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("consulta de CEP: status %d", resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	if bool(result.Erro) {
		return nil, httperr.ErrBusiness("cep_not_found")
	}

	c.cache.Set(digits, result, cache.DefaultExpiration)
	return &result, nil
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
