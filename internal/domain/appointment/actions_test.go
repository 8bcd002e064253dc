package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/agenda-client/internal/models"
)

func TestActionsFor_Pending(t *testing.T) {
	ap := models.Appointment{Status: int(StatusPending)}
	assert.Equal(t, []Action{ActionConfirm}, ActionsFor(ap))
}

func TestActionsFor_ConfirmedFull(t *testing.T) {
	ap := models.Appointment{
		Status: int(StatusConfirmed),
		Estabelecimento: models.Establishment{
			Nome: "Barbearia Central", Lat: "-23.55", Long: "-46.66",
		},
		Colaborador: &models.Staff{Nome: "Carlos", Telefone: "5511988887777"},
	}
	assert.Equal(t, []Action{ActionCancel, ActionDirections, ActionMessage}, ActionsFor(ap))
}

func TestActionsFor_ConfirmedWithoutExtras(t *testing.T) {
	ap := models.Appointment{Status: int(StatusConfirmed)}
	assert.Equal(t, []Action{ActionCancel}, ActionsFor(ap))
}

func TestActionsFor_TerminalStatuses(t *testing.T) {
	assert.Nil(t, ActionsFor(models.Appointment{Status: int(StatusCancelled)}))
	assert.Nil(t, ActionsFor(models.Appointment{Status: int(StatusCompleted)}))
}

func TestDirectionsURL(t *testing.T) {
	est := models.Establishment{Nome: "Studio Bella", Lat: "-23.56", Long: "-46.65"}
	assert.Equal(t, "geo:0,0?q=-23.56,-46.65(Studio+Bella)", DirectionsURL(est))

	assert.Empty(t, DirectionsURL(models.Establishment{Nome: "Sem Coordenadas"}))
}

func TestMessageURL(t *testing.T) {
	staff := &models.Staff{Telefone: "5511988887777"}
	assert.Equal(t, "whatsapp://send?phone=5511988887777", MessageURL(staff))

	assert.Empty(t, MessageURL(nil))
	assert.Empty(t, MessageURL(&models.Staff{}))
}
