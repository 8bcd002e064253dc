package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoSession indica chamada autenticada sem token guardado — a tela deve
// redirecionar para o login.
var ErrNoSession = errors.New("sessão ausente")

// APIError carrega o status HTTP e os campos de erro que o servidor devolve.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("api: %d %s", e.Status, e.Code)
}

// ConflictError é o 422 do lock-horario: o horário escolhido já foi tomado.
// Slots, quando presente, é a lista atualizada embutida no payload de erro
// (chave "horarios" ou "data") e deve ser adotada sem novo round trip.
type ConflictError struct {
	Message string
	Slots   []string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return "api: conflito de horário: " + e.Message
	}
	return "api: conflito de horário"
}

// HasSlots distingue payload com lista atualizada de payload sem lista;
// lista vazia ainda conta como lista.
func (e *ConflictError) HasSlots() bool {
	return e.Slots != nil
}

func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusUnauthorized
	}
	return errors.Is(err, ErrNoSession)
}
