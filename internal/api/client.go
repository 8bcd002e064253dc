package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/agenda-client/internal/session"
)

// limite de leitura do corpo; nenhuma resposta legítima passa disso
const maxBodyBytes = 4 << 20

// Client é a fronteira única com a API remota: injeta o bearer token lido do
// Store antes de cada chamada autenticada, normaliza o envelope de resposta
// e traduz falhas para a taxonomia de erros do cliente.
type Client struct {
	baseURL string
	http    *http.Client
	store   session.Store
	log     zerolog.Logger
}

func New(baseURL string, timeout time.Duration, store session.Store, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		store:   store,
		log:     log,
	}
}

type request struct {
	method string
	path   string
	body   any
	authed bool

	// status de sucesso esperado; zero aceita qualquer 2xx
	wantStatus int
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	var reqBody io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("montar payload: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, reqBody)
	if err != nil {
		return err
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("X-Request-ID", requestID)

	if req.authed {
		token, err := c.store.Token()
		if err != nil {
			return err
		}
		if token == "" {
			return ErrNoSession
		}
		// O token já é guardado com o prefixo "Bearer ".
		httpReq.Header.Set("Authorization", token)
	}

	started := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.log.Warn().
			Str("request_id", requestID).
			Str("method", req.method).
			Str("path", req.path).
			Err(err).
			Msg("falha de rede")
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return err
	}

	c.log.Debug().
		Str("request_id", requestID).
		Str("method", req.method).
		Str("path", req.path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(started)).
		Msg("chamada à API")

	if resp.StatusCode >= 400 {
		return c.parseError(resp.StatusCode, raw)
	}

	if req.wantStatus != 0 && resp.StatusCode != req.wantStatus {
		return &APIError{Status: resp.StatusCode, Code: "unexpected_status"}
	}

	if out == nil {
		return nil
	}
	if err := decodeEnvelope(raw, out); err != nil {
		return fmt.Errorf("decodificar resposta: %w", err)
	}
	return nil
}

type errorPayload struct {
	Error     string          `json:"error"`
	ErrorCode string          `json:"error_code"`
	Message   string          `json:"message"`
	Horarios  json.RawMessage `json:"horarios"`
	Data      json.RawMessage `json:"data"`
}

func (c *Client) parseError(status int, raw []byte) error {
	var payload errorPayload
	_ = json.Unmarshal(raw, &payload)

	if status == http.StatusUnprocessableEntity {
		return &ConflictError{
			Message: payload.Message,
			Slots:   conflictSlots(payload),
		}
	}

	code := payload.ErrorCode
	if code == "" {
		code = payload.Error
	}

	return &APIError{
		Status:  status,
		Code:    code,
		Message: payload.Message,
	}
}

// conflictSlots procura a lista atualizada nas duas chaves possíveis.
func conflictSlots(payload errorPayload) []string {
	for _, raw := range [][]byte{payload.Horarios, payload.Data} {
		if len(raw) == 0 {
			continue
		}
		var slots []string
		if err := json.Unmarshal(raw, &slots); err == nil {
			return slots
		}
	}
	return nil
}
