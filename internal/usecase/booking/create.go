package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/notetime/booking-api/internal/audit"
	domain "github.com/notetime/booking-api/internal/domain/booking"
	"github.com/notetime/booking-api/internal/httperr"
	"github.com/notetime/booking-api/internal/models"
	"github.com/notetime/booking-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string

	StaffID    uuid.UUID
	ServiceIDs []uuid.UUID

	Date string // "2006-01-02" ou "02/01/2006"
	Time string // "HH:MM"

	Notes     string
	CreatedBy uuid.UUID
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo      domain.Repository
	conflicts *domain.ConflictDetector
	audit     *audit.Dispatcher
	loc       *time.Location
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateBooking {
	return &CreateBooking{
		repo:      repo,
		conflicts: domain.NewConflictDetector(repo),
		audit:     audit,
		loc:       loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Barbeiro
	// --------------------------------------------------
	staff, err := uc.repo.GetStaffByID(ctx, in.StaffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, httperr.NotFoundErr(
			"staff_not_found",
			"Barbeiro não encontrado: "+in.StaffID.String(),
		)
	}
	if !staff.CanAcceptBookings() {
		if !staff.Active {
			return nil, httperr.InvalidState(
				"staff_inactive",
				"Barbeiro '"+staff.Name+"' está inativo.",
			)
		}
		return nil, httperr.InvalidState(
			"staff_without_unit",
			"Barbeiro '"+staff.Name+"' não está lotado em nenhuma unidade.",
		)
	}

	// --------------------------------------------------
	// 2. Serviços (ids deduplicados, mantendo a ordem)
	// --------------------------------------------------
	if in.ClientName == "" {
		return nil, httperr.InvalidInput("missing_client_name", "Nome do cliente é obrigatório.")
	}

	serviceIDs := dedupIDs(in.ServiceIDs)
	if len(serviceIDs) == 0 {
		return nil, httperr.InvalidInput(
			"missing_services",
			"Selecione pelo menos um serviço.",
		)
	}

	services, missing, err := uc.repo.GetServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, httperr.NotFoundErr(
			"service_not_found",
			"Serviço(s) não encontrado(s): "+joinIDs(missing),
		)
	}

	var inactive []string
	for _, s := range services {
		if !s.Active {
			inactive = append(inactive, s.Name)
		}
	}
	if len(inactive) > 0 {
		return nil, httperr.InvalidState(
			"service_inactive",
			"Serviço(s) inativo(s): "+strings.Join(inactive, ", "),
		)
	}

	// --------------------------------------------------
	// 3/4. Data + hora → instante agendado
	// --------------------------------------------------
	start, err := domain.CombineDateTime(in.Date, in.Time, uc.loc)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Totais (preço decimal exato, duração em minutos inteiros)
	// --------------------------------------------------
	totalPrice := decimal.Zero
	totalDuration := 0
	for _, s := range services {
		totalPrice = totalPrice.Add(s.Price)
		totalDuration += s.DurationMin
	}

	// --------------------------------------------------
	// 6. Conflito de horário
	// --------------------------------------------------
	conflict, err := uc.conflicts.HasConflict(ctx, staff.ID, start, totalDuration)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, httperr.Conflict(
			"time_conflict",
			"Horário indisponível: "+in.Time+" em "+in.Date+" já está ocupado para "+staff.Name+".",
		)
	}

	// --------------------------------------------------
	// 7. Cliente (get or create, telefone normalizado)
	// --------------------------------------------------
	phone := validators.NormalizePhone(in.ClientPhone)
	client, err := uc.repo.GetOrCreateClient(ctx, in.ClientName, phone, in.ClientEmail)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 8. Criação (snapshots do catálogo, nunca do request)
	// --------------------------------------------------
	items := make([]models.BookingItem, 0, len(services))
	for i, s := range services {
		items = append(items, models.BookingItem{
			Position:    i,
			ServiceID:   s.ID,
			ServiceName: s.Name,
			UnitPrice:   s.Price,
			DurationMin: s.DurationMin,
		})
	}

	b := &models.Booking{
		ClientID:    client.ID,
		ClientName:  client.Name,
		ClientEmail: client.Email,
		ClientPhone: client.Phone,
		StaffID:     staff.ID,
		StaffName:   staff.Name,
		UnitID:      *staff.UnitID,
		Items:       items,
		StartTime:   start,
		DurationMin: totalDuration,
		TotalPrice:  totalPrice,
		Status:      string(domain.InitialStatus()),
		Notes:       in.Notes,
		CreatedBy:   in.CreatedBy,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 9. Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.CreatedBy,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}

func dedupIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func joinIDs(ids []uuid.UUID) string {
	strs := make([]string, 0, len(ids))
	for _, id := range ids {
		strs = append(strs, id.String())
	}
	return strings.Join(strs, ", ")
}
