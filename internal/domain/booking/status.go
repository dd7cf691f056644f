package booking

import (
	"strings"

	"github.com/notetime/booking-api/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusPresent   Status = "present"
	StatusAbsent    Status = "absent"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// validTransitions é a tabela única de transições. Tanto as operações
// nomeadas (Confirm/Cancel) quanto a genérica (Transition) consultam a
// mesma tabela.
var validTransitions = map[Status][]Status{
	StatusScheduled: {StatusConfirmed, StatusPresent, StatusAbsent, StatusCancelled, StatusCompleted},
	StatusConfirmed: {StatusPresent, StatusAbsent, StatusCancelled, StatusCompleted},
	StatusPresent:   {StatusCompleted},
	StatusAbsent:    {},
	StatusCancelled: {},
	StatusCompleted: {},
}

// occupyingStatuses bloqueiam o intervalo do barbeiro na agenda.
var occupyingStatuses = []Status{StatusScheduled, StatusConfirmed, StatusPresent}

func InitialStatus() Status {
	return StatusScheduled
}

// ParseStatus aceita qualquer caixa ("CONFIRMED", "Confirmed"...).
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := validTransitions[s]; !ok {
		return "", httperr.InvalidInput(
			"invalid_status",
			"Status desconhecido: "+raw,
		)
	}
	return s, nil
}

func (s Status) IsOccupying() bool {
	for _, o := range occupyingStatuses {
		if s == o {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	allowed, ok := validTransitions[s]
	return !ok || len(allowed) == 0
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// OccupyingStatusStrings devolve o conjunto ocupante para filtros SQL.
func OccupyingStatusStrings() []string {
	out := make([]string, 0, len(occupyingStatuses))
	for _, s := range occupyingStatuses {
		out = append(out, string(s))
	}
	return out
}

// ===============================
// Validations
// ===============================

// CanConfirm: apenas agendamentos pendentes podem ser confirmados.
func CanConfirm(current Status) error {
	if current != StatusScheduled {
		return httperr.InvalidTransition(
			"invalid_transition",
			"Apenas agendamentos com status 'scheduled' podem ser confirmados.",
		)
	}
	return nil
}

// CanCancel: pendentes e confirmados podem ser cancelados.
func CanCancel(current Status) error {
	if current != StatusScheduled && current != StatusConfirmed {
		return httperr.InvalidTransition(
			"invalid_transition",
			"Agendamento com status '"+string(current)+"' não pode ser cancelado.",
		)
	}
	return nil
}

func CanTransition(current, target Status) error {
	if !current.CanTransitionTo(target) {
		return httperr.InvalidTransition(
			"invalid_transition",
			"Transição de '"+string(current)+"' para '"+string(target)+"' não é permitida.",
		)
	}
	return nil
}
