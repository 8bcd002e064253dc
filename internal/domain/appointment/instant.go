package appointment

import (
	"time"

	"github.com/BruksfildServices01/agenda-client/internal/models"
	"github.com/BruksfildServices01/agenda-client/internal/timezone"
)

// Instant combina data + início no fuso padrão. É o ponto no tempo usado
// para classificar futuro/passado e para ordenar.
func Instant(ap models.Appointment) (time.Time, error) {
	return timezone.ParseDateTime(ap.Data, ap.Inicio)
}
