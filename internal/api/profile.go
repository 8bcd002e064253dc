package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/BruksfildServices01/agenda-client/internal/models"
)

func (c *Client) GetUser(ctx context.Context) (*models.User, error) {
	var user models.User
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/user",
		authed: true,
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateSearchRadius(ctx context.Context, km float64) error {
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   "/perfil/raio_busca",
		body:   map[string]float64{"raio_busca": km},
		authed: true,
	}, nil)
}

func (c *Client) SetReminder24h(ctx context.Context, on bool) error {
	return c.setReminder(ctx, "/perfil/aviso_24h", "aviso_24h", on)
}

func (c *Client) SetReminder2h(ctx context.Context, on bool) error {
	return c.setReminder(ctx, "/perfil/aviso_2h", "aviso_2h", on)
}

func (c *Client) setReminder(ctx context.Context, path, field string, on bool) error {
	value := 0
	if on {
		value = 1
	}
	return c.do(ctx, request{
		method: http.MethodPost,
		path:   path,
		body:   map[string]int{field: value},
		authed: true,
	}, nil)
}

type EditProfileInput struct {
	Nome string

	// Avatar opcional; Reader nulo mantém a foto atual.
	AvatarName string
	Avatar     io.Reader
}

// EditProfile envia o multipart de edição (nome + avatar opcional). O backend
// espera POST com _method=PUT, como o app faz.
func (c *Client) EditProfile(ctx context.Context, in EditProfileInput) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("nome", in.Nome); err != nil {
		return err
	}
	if err := w.WriteField("_method", "PUT"); err != nil {
		return err
	}

	if in.Avatar != nil {
		part, err := w.CreateFormFile("avatar", filepath.Base(in.AvatarName))
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, in.Avatar); err != nil {
			return err
		}
	}

	if err := w.Close(); err != nil {
		return err
	}

	token, err := c.store.Token()
	if err != nil {
		return err
	}
	if token == "" {
		return ErrNoSession
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/perfil/edit_profile", &buf)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", w.FormDataContentType())
	httpReq.Header.Set("Authorization", token)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		return c.parseError(resp.StatusCode, raw)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("editar perfil: status inesperado %d", resp.StatusCode)
	}
	return nil
}
