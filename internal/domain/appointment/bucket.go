package appointment

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/agenda-client/internal/models"
)

// ===============================
// Buckets (futuros / passados)
// ===============================

// Agenda é o resultado da classificação de uma coleção recém-buscada.
// Recalculada a cada passada — a fronteira entre as abas anda junto com o
// relógio enquanto a tela fica montada.
type Agenda struct {
	Upcoming []models.Appointment
	Past     []models.Appointment
}

// IsVisible aplica a regra de visibilidade do pendente: status 0 some das
// duas abas depois de 15 minutos da criação. O servidor deve expirar o lock
// pelo seu lado; aqui é defesa de exibição, não chamada de expiração.
func IsVisible(ap models.Appointment, now time.Time) bool {
	if Status(ap.Status) == StatusPending {
		return now.Sub(ap.CreatedAt) < PendingWindow
	}
	return true
}

// Classify filtra, reparte e ordena: futuros ascendente (mais próximo
// primeiro), passados descendente. Empates preservam a ordem da resposta
// (sort estável). Itens com data/hora ilegível ficam fora das duas abas.
func Classify(appointments []models.Appointment, now time.Time) Agenda {
	type entry struct {
		ap      models.Appointment
		instant time.Time
	}

	var upcoming, past []entry

	for _, ap := range appointments {
		if !IsVisible(ap, now) {
			continue
		}

		instant, err := Instant(ap)
		if err != nil {
			continue
		}

		e := entry{ap: ap, instant: instant}
		if !instant.Before(now) {
			upcoming = append(upcoming, e)
		} else {
			past = append(past, e)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].instant.Before(upcoming[j].instant)
	})
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].instant.After(past[j].instant)
	})

	var agenda Agenda
	for _, e := range upcoming {
		agenda.Upcoming = append(agenda.Upcoming, e.ap)
	}
	for _, e := range past {
		agenda.Past = append(agenda.Past, e.ap)
	}
	return agenda
}
