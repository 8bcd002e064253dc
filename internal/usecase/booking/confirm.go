package booking

import (
	"context"

	"github.com/BruksfildServices01/agenda-client/internal/models"
)

// AppointmentsAPI é a fatia da API usada pela agenda e pela confirmação.
type AppointmentsAPI interface {
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	ConfirmAppointment(ctx context.Context, id uint) error
	CancelAppointment(ctx context.Context, id uint) error
}

// ======================================================
// CONFIRM
// ======================================================

type ConfirmAppointment struct {
	api AppointmentsAPI
}

func NewConfirmAppointment(appointmentsAPI AppointmentsAPI) *ConfirmAppointment {
	return &ConfirmAppointment{api: appointmentsAPI}
}

// Execute confirma o agendamento pendente. Sucesso devolve o usuário para a
// lista, que re-busca e passa a exibir o status confirmado; falha não muda
// nada localmente e pode ser tentada de novo.
func (uc *ConfirmAppointment) Execute(ctx context.Context, confirmation Confirmation) error {
	return uc.api.ConfirmAppointment(ctx, confirmation.AgendamentoID)
}
