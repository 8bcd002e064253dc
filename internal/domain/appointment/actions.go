package appointment

import (
	"fmt"
	"net/url"

	"github.com/BruksfildServices01/agenda-client/internal/models"
)

// ===============================
// Ações por status (aba futuros)
// ===============================

type Action string

const (
	ActionConfirm    Action = "confirmar"
	ActionCancel     Action = "cancelar"
	ActionDirections Action = "rotas"
	ActionMessage    Action = "mensagem"
)

// ActionsFor devolve as ações que a aba de futuros expõe para o item.
func ActionsFor(ap models.Appointment) []Action {
	switch Status(ap.Status) {
	case StatusPending:
		return []Action{ActionConfirm}

	case StatusConfirmed:
		actions := []Action{ActionCancel}
		if ap.Estabelecimento.Lat != "" && ap.Estabelecimento.Long != "" {
			actions = append(actions, ActionDirections)
		}
		if ap.Colaborador != nil && ap.Colaborador.Telefone != "" {
			actions = append(actions, ActionMessage)
		}
		return actions
	}

	return nil
}

// DirectionsURL monta o deep link de mapa (esquema geo) do estabelecimento.
func DirectionsURL(est models.Establishment) string {
	if est.Lat == "" || est.Long == "" {
		return ""
	}
	label := est.Nome
	if label == "" {
		label = "Estabelecimento"
	}
	return fmt.Sprintf("geo:0,0?q=%s,%s(%s)", est.Lat, est.Long, url.QueryEscape(label))
}

// MessageURL monta o deep link de WhatsApp do colaborador.
func MessageURL(staff *models.Staff) string {
	if staff == nil || staff.Telefone == "" {
		return ""
	}
	return "whatsapp://send?phone=" + url.QueryEscape(staff.Telefone)
}
