package booking

import (
	"context"

	"github.com/rs/zerolog"
)

// ProfileAPI é a fatia da API usada pelas preferências do perfil.
type ProfileAPI interface {
	SetReminder24h(ctx context.Context, on bool) error
	SetReminder2h(ctx context.Context, on bool) error
}

// ======================================================
// LEMBRETES (toggle otimista com rollback)
// ======================================================

type Reminder string

const (
	Reminder24h Reminder = "aviso_24h"
	Reminder2h  Reminder = "aviso_2h"
)

type ToggleReminder struct {
	api ProfileAPI
	log zerolog.Logger
}

func NewToggleReminder(profileAPI ProfileAPI, log zerolog.Logger) *ToggleReminder {
	return &ToggleReminder{api: profileAPI, log: log}
}

// Execute persiste o toggle e devolve o estado que a tela deve exibir:
// o pedido em caso de sucesso, o anterior quando a gravação falha — o
// visual nunca fica à frente da verdade do servidor.
func (uc *ToggleReminder) Execute(ctx context.Context, which Reminder, on bool) (bool, error) {
	var err error
	switch which {
	case Reminder2h:
		err = uc.api.SetReminder2h(ctx, on)
	default:
		err = uc.api.SetReminder24h(ctx, on)
	}

	if err != nil {
		uc.log.Warn().Str("aviso", string(which)).Err(err).Msg("preferência não salva; revertendo toggle")
		return !on, err
	}
	return on, nil
}
