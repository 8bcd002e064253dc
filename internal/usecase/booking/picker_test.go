package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-client/internal/api"
	"github.com/BruksfildServices01/agenda-client/internal/httperr"
	"github.com/BruksfildServices01/agenda-client/internal/models"
)

// fakeSlotsAPI devolve horários por data e conta as chamadas; lockFn decide
// o resultado do lock.
type fakeSlotsAPI struct {
	mu         sync.Mutex
	byDate     map[string][]string
	fetchErr   error
	fetchCalls int

	lockFn func(q api.SlotQuery, horario string) (*models.Appointment, error)
}

func (f *fakeSlotsAPI) AvailableSlots(_ context.Context, q api.SlotQuery) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.byDate[q.Date], nil
}

func (f *fakeSlotsAPI) LockSlot(_ context.Context, q api.SlotQuery, horario string) (*models.Appointment, error) {
	return f.lockFn(q, horario)
}

func (f *fakeSlotsAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetchCalls
}

func newTestPicker(fake *fakeSlotsAPI) *SlotPicker {
	return NewSlotPicker(fake, api.SlotQuery{EstablishmentID: 1, ServiceID: 2}, zerolog.Nop())
}

func TestSelectDate_FetchesSlots(t *testing.T) {
	fake := &fakeSlotsAPI{byDate: map[string][]string{
		"2026-09-10": {"09:00", "09:30"},
	}}
	picker := newTestPicker(fake)

	slots := picker.SelectDate(context.Background(), "2026-09-10")

	assert.Equal(t, []string{"09:00", "09:30"}, slots)
	assert.Equal(t, "2026-09-10", picker.Date())
}

func TestSelectDate_ClearsSelection(t *testing.T) {
	fake := &fakeSlotsAPI{byDate: map[string][]string{
		"2026-09-10": {"09:00"},
		"2026-09-11": {"10:00"},
	}}
	picker := newTestPicker(fake)

	picker.SelectDate(context.Background(), "2026-09-10")
	require.NoError(t, picker.SelectTime("09:00"))
	require.Equal(t, "09:00", picker.Selected())

	picker.SelectDate(context.Background(), "2026-09-11")
	assert.Empty(t, picker.Selected())
}

func TestSelectDate_FetchFailureShowsEmptyDay(t *testing.T) {
	fake := &fakeSlotsAPI{fetchErr: errors.New("rede fora")}
	picker := newTestPicker(fake)

	slots := picker.SelectDate(context.Background(), "2026-09-10")
	assert.Empty(t, slots)
	assert.Empty(t, picker.Slots())
}

func TestSelectTime_MustBeListed(t *testing.T) {
	fake := &fakeSlotsAPI{byDate: map[string][]string{"2026-09-10": {"09:00"}}}
	picker := newTestPicker(fake)
	picker.SelectDate(context.Background(), "2026-09-10")

	err := picker.SelectTime("23:00")
	assert.True(t, httperr.IsBusiness(err, "time_not_listed"))
	assert.Empty(t, picker.Selected())
}

func TestApply_DiscardsStaleGeneration(t *testing.T) {
	fake := &fakeSlotsAPI{byDate: map[string][]string{"2026-09-11": {"10:00"}}}
	picker := newTestPicker(fake)

	// A troca de dia invalida a geração anterior; a resposta atrasada do dia
	// antigo chega depois e não pode atropelar a lista corrente.
	picker.SelectDate(context.Background(), "2026-09-10")
	stale := picker.gen
	picker.SelectDate(context.Background(), "2026-09-11")

	current := picker.apply(stale, []string{"08:00", "08:30"})

	assert.Equal(t, []string{"10:00"}, current)
	assert.Equal(t, []string{"10:00"}, picker.Slots())
}

func TestGroups(t *testing.T) {
	fake := &fakeSlotsAPI{byDate: map[string][]string{
		"2026-09-10": {"08:00", "13:30", "19:00"},
	}}
	picker := newTestPicker(fake)
	picker.SelectDate(context.Background(), "2026-09-10")

	groups := picker.Groups()
	require.Len(t, groups, 3)
	assert.Equal(t, []string{"08:00"}, groups[0].Slots)
	assert.Equal(t, []string{"13:30"}, groups[1].Slots)
	assert.Equal(t, []string{"19:00"}, groups[2].Slots)
}
