package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/agenda-client/internal/api"
	"github.com/BruksfildServices01/agenda-client/internal/domain/slots"
	"github.com/BruksfildServices01/agenda-client/internal/httperr"
	"github.com/BruksfildServices01/agenda-client/internal/models"
)

// Mensagem genérica quando o 422 não traz texto do servidor.
const DefaultConflictMessage = "Este horário não está mais disponível."

// Confirmation é o que segue para a etapa de confirmação: os campos do 201
// copiados como vieram — o servidor manda na janela exata, o cliente só
// corta os segundos para exibição.
type Confirmation struct {
	AgendamentoID uint
	Data          string
	Inicio        string // HH:MM
	Fim           string // HH:MM

	Servico         models.Service
	Estabelecimento models.Establishment
	Colaborador     *models.Staff
}

// ConfirmationFrom remonta a etapa de confirmação a partir de um item já
// listado (o caminho "confirmar" da aba de futuros).
func ConfirmationFrom(ap models.Appointment) Confirmation {
	return Confirmation{
		AgendamentoID:   ap.ID,
		Data:            ap.Data,
		Inicio:          slots.Display(ap.Inicio),
		Fim:             slots.Display(ap.Fim),
		Servico:         ap.Servico,
		Estabelecimento: ap.Estabelecimento,
		Colaborador:     ap.Colaborador,
	}
}

// SlotConflictError informa a tela que o horário foi tomado. Slots já é a
// lista recuperada (adotada do payload ou re-buscada); a seleção foi limpa.
type SlotConflictError struct {
	Message string
	Slots   []string
}

func (e *SlotConflictError) Error() string {
	return e.Message
}

// ======================================================
// LOCK (reserva otimista)
// ======================================================

// Lock tenta reservar o horário selecionado.
//
//   - 201: devolve a Confirmation montada do agendamento criado.
//   - 422: adota a lista atualizada embutida no erro, ou re-busca uma única
//     vez quando ela não vem; limpa a seleção e devolve *SlotConflictError.
//   - Qualquer outra falha: seleção mantida, nenhum estado mudado —
//     tratamos como transitória e recuperável.
func (p *SlotPicker) Lock(ctx context.Context) (*Confirmation, error) {
	p.mu.Lock()
	selected := p.selected
	gen := p.gen
	q := p.query()
	p.mu.Unlock()

	if selected == "" {
		return nil, httperr.ErrBusiness("no_time_selected")
	}

	created, err := p.api.LockSlot(ctx, q, selected)
	if err == nil {
		confirmation := ConfirmationFrom(*created)
		return &confirmation, nil
	}

	var conflict *api.ConflictError
	if !errors.As(err, &conflict) {
		return nil, err
	}

	message := conflict.Message
	if message == "" {
		message = DefaultConflictMessage
	}

	var updated []string
	if conflict.HasSlots() {
		updated = p.apply(gen, conflict.Slots)
	} else {
		fetched, fetchErr := p.api.AvailableSlots(ctx, q)
		if fetchErr != nil {
			p.log.Warn().Err(fetchErr).Msg("re-busca pós-conflito falhou; exibindo dia vazio")
			fetched = nil
		}
		updated = p.apply(gen, fetched)
	}

	p.clearSelection()

	return nil, &SlotConflictError{
		Message: message,
		Slots:   updated,
	}
}

func (p *SlotPicker) clearSelection() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selected = ""
}
