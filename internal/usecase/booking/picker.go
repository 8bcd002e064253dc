package booking

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/agenda-client/internal/api"
	"github.com/BruksfildServices01/agenda-client/internal/domain/slots"
	"github.com/BruksfildServices01/agenda-client/internal/httperr"
	"github.com/BruksfildServices01/agenda-client/internal/models"
)

// SlotsAPI é a fatia da API que o fluxo de agendamento consome.
type SlotsAPI interface {
	AvailableSlots(ctx context.Context, q api.SlotQuery) ([]string, error)
	LockSlot(ctx context.Context, q api.SlotQuery, horario string) (*models.Appointment, error)
}

// ======================================================
// SLOT PICKER
// ======================================================

// SlotPicker guarda o estado da tela de escolha de horário: dia selecionado,
// horários exibidos e horário escolhido. Trocar de dia sempre zera a escolha.
//
// Cada busca carrega uma geração monotônica; resposta que chega com geração
// velha é descartada, para uma resposta lenta do dia anterior não atropelar
// a do dia atual.
type SlotPicker struct {
	api SlotsAPI
	log zerolog.Logger

	mu       sync.Mutex
	base     api.SlotQuery
	date     string
	gen      uint64
	slots    []string
	selected string
}

func NewSlotPicker(slotsAPI SlotsAPI, base api.SlotQuery, log zerolog.Logger) *SlotPicker {
	return &SlotPicker{
		api:  slotsAPI,
		log:  log,
		base: base,
	}
}

// SelectDate troca o dia consultado, limpa a seleção anterior e busca os
// horários. Falha de rede vira dia vazio — a tela mostra "sem horários",
// não uma tela de erro.
func (p *SlotPicker) SelectDate(ctx context.Context, date string) []string {
	p.mu.Lock()
	p.date = date
	p.selected = ""
	p.gen++
	gen := p.gen
	q := p.query()
	p.mu.Unlock()

	fetched, err := p.api.AvailableSlots(ctx, q)
	if err != nil {
		p.log.Warn().Str("data", date).Err(err).Msg("busca de horários falhou; exibindo dia vazio")
		fetched = nil
	}

	return p.apply(gen, fetched)
}

// SelectTime marca o horário escolhido; precisa estar entre os exibidos.
func (p *SlotPicker) SelectTime(slot string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, s := range p.slots {
		if s == slot {
			p.selected = slot
			return nil
		}
	}
	return httperr.ErrBusiness("time_not_listed")
}

func (p *SlotPicker) Selected() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selected
}

func (p *SlotPicker) Date() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.date
}

func (p *SlotPicker) Slots() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.slots...)
}

// Groups devolve os horários agrupados por período para exibição.
func (p *SlotPicker) Groups() []slots.Group {
	return slots.GroupByDayPart(p.Slots())
}

// query monta a consulta do dia corrente; chamar com o mutex preso.
func (p *SlotPicker) query() api.SlotQuery {
	q := p.base
	q.Date = p.date
	return q
}

// apply instala a lista buscada se a geração ainda for a corrente.
func (p *SlotPicker) apply(gen uint64, fetched []string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen {
		p.log.Debug().
			Uint64("gen", gen).
			Uint64("atual", p.gen).
			Msg("resposta obsoleta descartada")
		return append([]string(nil), p.slots...)
	}

	p.slots = fetched
	return append([]string(nil), p.slots...)
}
