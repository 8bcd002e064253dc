package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/agenda-client/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-client/internal/models"
	"github.com/BruksfildServices01/agenda-client/internal/timezone"
)

type fakeAppointmentsAPI struct {
	appointments []models.Appointment
	listErr      error
	listCalls    int

	confirmed []uint
	cancelled []uint
	actionErr error
}

func (f *fakeAppointmentsAPI) ListAppointments(context.Context) ([]models.Appointment, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.appointments, nil
}

func (f *fakeAppointmentsAPI) ConfirmAppointment(_ context.Context, id uint) error {
	if f.actionErr != nil {
		return f.actionErr
	}
	f.confirmed = append(f.confirmed, id)
	return nil
}

func (f *fakeAppointmentsAPI) CancelAppointment(_ context.Context, id uint) error {
	if f.actionErr != nil {
		return f.actionErr
	}
	f.cancelled = append(f.cancelled, id)
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments[i].Status = int(domain.StatusCancelled)
		}
	}
	return nil
}

func dayOffset(offset int) string {
	return timezone.Now().AddDate(0, 0, offset).Format("2006-01-02")
}

func TestListSchedule(t *testing.T) {
	fake := &fakeAppointmentsAPI{appointments: []models.Appointment{
		{ID: 1, Data: dayOffset(2), Inicio: "10:00", Status: int(domain.StatusConfirmed)},
		{ID: 2, Data: dayOffset(-2), Inicio: "10:00", Status: int(domain.StatusCompleted)},
	}}

	agenda, err := NewListSchedule(fake, zerolog.Nop()).Execute(context.Background())
	require.NoError(t, err)

	require.Len(t, agenda.Upcoming, 1)
	assert.Equal(t, uint(1), agenda.Upcoming[0].ID)
	require.Len(t, agenda.Past, 1)
	assert.Equal(t, uint(2), agenda.Past[0].ID)
}

func TestListSchedule_PropagatesError(t *testing.T) {
	fake := &fakeAppointmentsAPI{listErr: errors.New("rede fora")}

	_, err := NewListSchedule(fake, zerolog.Nop()).Execute(context.Background())
	assert.Error(t, err)
}

func TestCancelAppointment_RefetchesAfterCancel(t *testing.T) {
	target := models.Appointment{ID: 5, Data: dayOffset(3), Inicio: "09:00", Status: int(domain.StatusConfirmed)}
	fake := &fakeAppointmentsAPI{appointments: []models.Appointment{target}}

	agenda, err := NewCancelAppointment(fake, zerolog.Nop()).Execute(context.Background(), target)
	require.NoError(t, err)

	assert.Equal(t, []uint{5}, fake.cancelled)
	// Nada de remoção otimista: a lista exibida é a re-buscada do servidor,
	// já com o status que ele gravou.
	assert.Equal(t, 1, fake.listCalls)
	require.Len(t, agenda.Upcoming, 1)
	assert.Equal(t, int(domain.StatusCancelled), agenda.Upcoming[0].Status)
	assert.Empty(t, domain.ActionsFor(agenda.Upcoming[0]))
}

func TestCancelAppointment_RejectsNonConfirmed(t *testing.T) {
	fake := &fakeAppointmentsAPI{}
	pending := models.Appointment{ID: 6, Status: int(domain.StatusPending)}

	_, err := NewCancelAppointment(fake, zerolog.Nop()).Execute(context.Background(), pending)
	assert.Error(t, err)
	assert.Empty(t, fake.cancelled)
	assert.Zero(t, fake.listCalls)
}

func TestConfirmAppointment(t *testing.T) {
	fake := &fakeAppointmentsAPI{}

	err := NewConfirmAppointment(fake).Execute(context.Background(), Confirmation{AgendamentoID: 9})
	require.NoError(t, err)
	assert.Equal(t, []uint{9}, fake.confirmed)
}

func TestConfirmAppointment_FailureChangesNothing(t *testing.T) {
	fake := &fakeAppointmentsAPI{actionErr: errors.New("rede fora")}

	err := NewConfirmAppointment(fake).Execute(context.Background(), Confirmation{AgendamentoID: 9})
	assert.Error(t, err)
	assert.Empty(t, fake.confirmed)
}
