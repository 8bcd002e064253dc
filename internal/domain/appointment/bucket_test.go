package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-client/internal/models"
	"github.com/BruksfildServices01/agenda-client/internal/timezone"
)

func at(t *testing.T, date, hhmm string) time.Time {
	t.Helper()
	instant, err := timezone.ParseDateTime(date, hhmm)
	require.NoError(t, err)
	return instant
}

func TestIsVisible_PendingExpiresAfterWindow(t *testing.T) {
	now := at(t, "2026-09-01", "10:00")

	fresh := models.Appointment{Status: int(StatusPending), CreatedAt: now.Add(-14 * time.Minute)}
	stale := models.Appointment{Status: int(StatusPending), CreatedAt: now.Add(-15 * time.Minute)}

	assert.True(t, IsVisible(fresh, now))
	assert.False(t, IsVisible(stale, now))
}

func TestIsVisible_OtherStatusesAlwaysVisible(t *testing.T) {
	now := at(t, "2026-09-01", "10:00")
	old := now.Add(-48 * time.Hour)

	for _, status := range []Status{StatusConfirmed, StatusCancelled, StatusCompleted, Status(9)} {
		ap := models.Appointment{Status: int(status), CreatedAt: old}
		assert.True(t, IsVisible(ap, now), "status %d", status)
	}
}

func TestClassify_PartitionsAndOrders(t *testing.T) {
	now := at(t, "2026-09-01", "12:00")

	appointments := []models.Appointment{
		{ID: 1, Data: "2026-09-03", Inicio: "09:00", Status: int(StatusConfirmed)},
		{ID: 2, Data: "2026-09-01", Inicio: "14:00", Status: int(StatusConfirmed)},
		{ID: 3, Data: "2026-08-20", Inicio: "10:00", Status: int(StatusCompleted)},
		{ID: 4, Data: "2026-08-30", Inicio: "16:00:00", Status: int(StatusCompleted)},
	}

	agenda := Classify(appointments, now)

	require.Len(t, agenda.Upcoming, 2)
	assert.Equal(t, uint(2), agenda.Upcoming[0].ID) // mais próximo primeiro
	assert.Equal(t, uint(1), agenda.Upcoming[1].ID)

	require.Len(t, agenda.Past, 2)
	assert.Equal(t, uint(4), agenda.Past[0].ID) // mais recente primeiro
	assert.Equal(t, uint(3), agenda.Past[1].ID)
}

func TestClassify_BoundaryIsUpcoming(t *testing.T) {
	now := at(t, "2026-09-01", "14:00")

	agenda := Classify([]models.Appointment{
		{ID: 1, Data: "2026-09-01", Inicio: "14:00", Status: int(StatusConfirmed)},
	}, now)

	require.Len(t, agenda.Upcoming, 1)
	assert.Empty(t, agenda.Past)
}

func TestClassify_TiesKeepResponseOrder(t *testing.T) {
	now := at(t, "2026-09-01", "08:00")

	agenda := Classify([]models.Appointment{
		{ID: 7, Data: "2026-09-02", Inicio: "10:00", Status: int(StatusConfirmed)},
		{ID: 8, Data: "2026-09-02", Inicio: "10:00", Status: int(StatusConfirmed)},
	}, now)

	require.Len(t, agenda.Upcoming, 2)
	assert.Equal(t, uint(7), agenda.Upcoming[0].ID)
	assert.Equal(t, uint(8), agenda.Upcoming[1].ID)
}

func TestClassify_DropsExpiredPendingAndUnparsable(t *testing.T) {
	now := at(t, "2026-09-01", "12:00")

	agenda := Classify([]models.Appointment{
		{ID: 1, Data: "2026-09-02", Inicio: "10:00", Status: int(StatusPending), CreatedAt: now.Add(-time.Hour)},
		{ID: 2, Data: "não-é-data", Inicio: "10:00", Status: int(StatusConfirmed)},
		{ID: 3, Data: "2026-09-02", Inicio: "", Status: int(StatusConfirmed)},
	}, now)

	assert.Empty(t, agenda.Upcoming)
	assert.Empty(t, agenda.Past)
}
