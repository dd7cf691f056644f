package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ===============================
// Conflict Detector
// ===============================

type ConflictDetector struct {
	repo Repository
}

func NewConflictDetector(repo Repository) *ConflictDetector {
	return &ConflictDetector{repo: repo}
}

// HasConflict verifica se o intervalo candidato sobrepõe algum
// agendamento ocupante do barbeiro no mesmo dia. Sempre relê o estado
// atual, nunca de cache de agenda.
func (d *ConflictDetector) HasConflict(
	ctx context.Context,
	staffID uuid.UUID,
	start time.Time,
	durationMin int,
) (bool, error) {

	dayStart, dayEnd := DayWindow(start)

	existing, err := d.repo.ListOccupyingForDay(ctx, staffID, dayStart, dayEnd)
	if err != nil {
		return false, err
	}

	candidate := time.Duration(durationMin) * time.Minute

	for _, b := range existing {
		held := time.Duration(b.DurationMin) * time.Minute
		if Overlaps(start, candidate, b.StartTime, held) {
			return true, nil
		}
	}

	return false, nil
}
