package audit

import "github.com/rs/zerolog"

type Logger struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Log(userID *uint, action, entity string, entityID *uint, metadata any) error {
	ev := l.log.Info().
		Str("action", action).
		Str("entity", entity)

	if userID != nil {
		ev = ev.Uint("user_id", *userID)
	}
	if entityID != nil {
		ev = ev.Uint("entity_id", *entityID)
	}
	if metadata != nil {
		ev = ev.Interface("metadata", metadata)
	}

	ev.Msg("audit")
	return nil
}
