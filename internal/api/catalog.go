package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BruksfildServices01/agenda-client/internal/models"
)

// Coordinates são as coordenadas do dispositivo. Ponteiro nulo = sem
// permissão de localização; o payload simplesmente não leva os campos e o
// servidor não calcula distância.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type coordsPayload struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func (c *Coordinates) payload() coordsPayload {
	if c == nil {
		return coordsPayload{}
	}
	return coordsPayload{Latitude: &c.Latitude, Longitude: &c.Longitude}
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/categorias-servico",
	}, &categories)
	return categories, err
}

func (c *Client) ListEstablishments(ctx context.Context, categoryID uint, coords *Coordinates) ([]models.Establishment, error) {
	var establishments []models.Establishment
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/categorias-servico/%d/estabelecimentos", categoryID),
		body:   coords.payload(),
	}, &establishments)
	return establishments, err
}

// GetEstablishment traz o detalhe do estabelecimento com seus serviços.
func (c *Client) GetEstablishment(ctx context.Context, id uint, coords *Coordinates) (*models.Establishment, error) {
	var establishment models.Establishment
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/estabelecimento/%d/servicos", id),
		body:   coords.payload(),
	}, &establishment)
	if err != nil {
		return nil, err
	}
	return &establishment, nil
}
