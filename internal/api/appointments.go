package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BruksfildServices01/agenda-client/internal/models"
)

// ListAppointments busca a coleção completa do usuário; não há paginação.
func (c *Client) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/agendamentos",
		authed: true,
	}, &appointments)
	return appointments, err
}

func (c *Client) ConfirmAppointment(ctx context.Context, id uint) error {
	return c.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/agendamentos/%d/confirmar", id),
		authed: true,
	}, nil)
}

func (c *Client) CancelAppointment(ctx context.Context, id uint) error {
	return c.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("/agendamentos/%d/cancelar", id),
		authed: true,
	}, nil)
}
