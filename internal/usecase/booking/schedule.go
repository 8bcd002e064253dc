package booking

import (
	"context"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/agenda-client/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-client/internal/models"
	"github.com/BruksfildServices01/agenda-client/internal/timezone"
)

// ======================================================
// AGENDA (lista agregada)
// ======================================================

type ListSchedule struct {
	api AppointmentsAPI
	log zerolog.Logger
}

func NewListSchedule(appointmentsAPI AppointmentsAPI, log zerolog.Logger) *ListSchedule {
	return &ListSchedule{api: appointmentsAPI, log: log}
}

// Execute busca a coleção inteira e classifica contra o relógio de agora.
// Cada chamada substitui o que a tela tinha — sem diff, sem merge.
func (uc *ListSchedule) Execute(ctx context.Context) (domain.Agenda, error) {
	appointments, err := uc.api.ListAppointments(ctx)
	if err != nil {
		return domain.Agenda{}, err
	}

	return domain.Classify(appointments, timezone.Now()), nil
}

// ======================================================
// CANCEL
// ======================================================

type CancelAppointment struct {
	api AppointmentsAPI
	log zerolog.Logger
}

func NewCancelAppointment(appointmentsAPI AppointmentsAPI, log zerolog.Logger) *CancelAppointment {
	return &CancelAppointment{api: appointmentsAPI, log: log}
}

// Execute cancela no servidor e re-busca a lista inteira — nada de remoção
// otimista; a tela só muda depois que o servidor confirmou.
func (uc *CancelAppointment) Execute(ctx context.Context, ap models.Appointment) (domain.Agenda, error) {
	if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
		return domain.Agenda{}, err
	}

	if err := uc.api.CancelAppointment(ctx, ap.ID); err != nil {
		return domain.Agenda{}, err
	}

	appointments, err := uc.api.ListAppointments(ctx)
	if err != nil {
		return domain.Agenda{}, err
	}
	return domain.Classify(appointments, timezone.Now()), nil
}
