package api

import (
	"context"
	"net/http"

	"github.com/BruksfildServices01/agenda-client/internal/session"
)

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Nome                 string `json:"nome,omitempty"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type authResponse struct {
	Token       string `json:"token"`
	AccessToken string `json:"access_token"`
}

func (r authResponse) token() string {
	if r.Token != "" {
		return r.Token
	}
	return r.AccessToken
}

// Login autentica e guarda o token ("Bearer xxx") no storage local.
func (c *Client) Login(ctx context.Context, in LoginInput) error {
	var resp authResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/login",
		body:   in,
	}, &resp)
	if err != nil {
		return err
	}

	token := resp.token()
	if token == "" {
		return &APIError{Status: http.StatusOK, Code: "token_nao_recebido", Message: "Token não recebido da API."}
	}

	return c.store.SetToken(session.Bearer(token))
}

// Register cadastra e, se a API já devolver token, deixa o usuário logado.
func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	var resp authResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/register",
		body:   in,
	}, &resp)
	if err != nil {
		return err
	}

	if token := resp.token(); token != "" {
		return c.store.SetToken(session.Bearer(token))
	}
	return nil
}

// Logout só descarta o token local; não há endpoint de logout.
func (c *Client) Logout() error {
	return c.store.ClearToken()
}
