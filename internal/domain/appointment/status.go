package appointment

import (
	"time"

	"github.com/BruksfildServices01/agenda-client/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

// Status é a enumeração observada no campo status da API. O servidor é a
// autoridade; valores desconhecidos são tratados como confirmados para fins
// de exibição.
type Status int

const (
	StatusPending   Status = 0
	StatusConfirmed Status = 1
	StatusCancelled Status = 2
	StatusCompleted Status = 3
)

// Janela em que um lock pendente ainda é confirmável e visível.
const PendingWindow = 15 * time.Minute

// ===============================
// Validations
// ===============================

// CanConfirm define se um agendamento ainda aceita confirmação.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel define se um agendamento pode ser cancelado pelo usuário.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
