package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/BruksfildServices01/agenda-client/internal/models"
)

type AddressInput struct {
	Nome        string `json:"nome"`
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Numero      string `json:"numero"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
}

func (c *Client) ListAddresses(ctx context.Context) ([]models.Address, error) {
	var addresses []models.Address
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/enderecos",
		authed: true,
	}, &addresses)
	return addresses, err
}

// SaveAddress cria (id zero) ou atualiza um endereço e grava no storage o
// rótulo formatado e o id selecionado, para exibição imediata no perfil.
func (c *Client) SaveAddress(ctx context.Context, id uint, in AddressInput) (*models.Address, error) {
	req := request{
		method: http.MethodPost,
		path:   "/enderecos",
		body:   in,
		authed: true,
	}
	if id != 0 {
		req.method = http.MethodPut
		req.path = fmt.Sprintf("/enderecos/%d", id)
	}

	var saved models.Address
	if err := c.do(ctx, req, &saved); err != nil {
		return nil, err
	}

	if saved.ID != 0 {
		if err := c.store.SetAddress(saved.Label(), strconv.FormatUint(uint64(saved.ID), 10)); err != nil {
			return nil, err
		}
	}
	return &saved, nil
}

// DeleteAddress remove o endereço; se era o selecionado, volta para
// "localização atual" limpando o cache local.
func (c *Client) DeleteAddress(ctx context.Context, id uint) error {
	err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/enderecos/%d", id),
		authed: true,
	}, nil)
	if err != nil {
		return err
	}

	_, selectedID, err := c.store.Address()
	if err != nil {
		return err
	}
	if selectedID == strconv.FormatUint(uint64(id), 10) {
		return c.store.ClearAddress()
	}
	return nil
}
