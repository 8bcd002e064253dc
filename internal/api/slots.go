package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/BruksfildServices01/agenda-client/internal/models"
)

// SlotQuery identifica o dia consultado. StaffID zero significa "qualquer
// profissional" e o campo fica fora do payload — não vai como null nem como
// zero, porque isso muda o matching no servidor.
type SlotQuery struct {
	EstablishmentID uint
	ServiceID       uint
	Date            string // YYYY-MM-DD
	StaffID         uint
}

type slotPayload struct {
	Data          string `json:"data"`
	ServicoID     uint   `json:"servico_id"`
	ColaboradorID *uint  `json:"colaborador_id,omitempty"`
	Horario       string `json:"horario,omitempty"`
}

func (q SlotQuery) payload(horario string) slotPayload {
	p := slotPayload{
		Data:      q.Date,
		ServicoID: q.ServiceID,
		Horario:   horario,
	}
	if q.StaffID != 0 {
		staffID := q.StaffID
		p.ColaboradorID = &staffID
	}
	return p
}

// AvailableSlots pede os horários livres do dia. A lista volta já filtrada
// pelo servidor (expediente, agenda, capacidade); o cliente não recalcula
// disponibilidade.
func (c *Client) AvailableSlots(ctx context.Context, q SlotQuery) ([]string, error) {
	var slots []string
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   fmt.Sprintf("/estabelecimento/%d/horarios-disponiveis", q.EstablishmentID),
		body:   q.payload(""),
	}, &slots)
	return slots, err
}

// LockSlot tenta reservar o horário. 201 devolve o agendamento criado, que
// segue intacto para a confirmação; 422 vira *ConflictError.
func (c *Client) LockSlot(ctx context.Context, q SlotQuery, horario string) (*models.Appointment, error) {
	var created models.Appointment
	err := c.do(ctx, request{
		method:     http.MethodPost,
		path:       fmt.Sprintf("/estabelecimento/%d/lock-horario", q.EstablishmentID),
		body:       q.payload(horario),
		authed:     true,
		wantStatus: http.StatusCreated,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}
