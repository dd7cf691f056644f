package reminder

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/notetime/booking-api/internal/config"
	domain "github.com/notetime/booking-api/internal/domain/booking"
	"github.com/notetime/booking-api/internal/notify"
)

// Service envia lembretes diários dos agendamentos do dia seguinte:
// SMS via Twilio quando configurado, e-mail como canal paralelo.
type Service struct {
	repo   domain.Repository
	mailer *notify.Mailer
	client *twilio.RestClient
	from   string
	loc    *time.Location
}

func NewService(
	repo domain.Repository,
	mailer *notify.Mailer,
	cfg *config.Config,
	loc *time.Location,
) *Service {
	var client *twilio.RestClient
	if cfg.TwilioAccountSID != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}

	return &Service{
		repo:   repo,
		mailer: mailer,
		client: client,
		from:   cfg.TwilioFromNumber,
		loc:    loc,
	}
}

// StartScheduler agenda o processamento diário às 09:00.
func (s *Service) StartScheduler() {
	c := cron.New(cron.WithLocation(s.loc))

	c.AddFunc("0 9 * * *", func() {
		s.SendDailyReminders(context.Background())
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendDailyReminders processa os agendamentos ocupantes de amanhã e
// devolve quantos lembretes foram disparados.
func (s *Service) SendDailyReminders(ctx context.Context) int {
	log.Println("Starting daily reminder processing...")

	tomorrow := time.Now().In(s.loc).AddDate(0, 0, 1)
	dayStart, _ := domain.DayWindow(tomorrow)

	// DateTo é inclusivo: a listagem estende qualquer instante do dia
	// até o fim dele. Passar a meia-noite seguinte cobriria dois dias.
	filters := domain.ListFilters{
		DateFrom: &dayStart,
		DateTo:   &dayStart,
	}

	bookings, err := s.repo.ListBookings(ctx, filters)
	if err != nil {
		log.Printf("Failed to fetch bookings for reminders: %v", err)
		return 0
	}

	sent := 0
	for i := range bookings {
		b := &bookings[i]
		if !domain.Status(b.Status).IsOccupying() {
			continue
		}

		s.mailer.SendReminder(b)
		s.sendSMS(b.ClientPhone, fmt.Sprintf(
			"NoteTime: lembrete do seu horário amanhã às %s com %s.",
			b.StartTime.Format("15:04"),
			b.StaffName,
		))
		sent++
	}

	log.Printf("Daily reminder processing completed (%d reminders)", sent)
	return sent
}

func (s *Service) sendSMS(to, body string) {
	if s.client == nil || to == "" {
		return
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("+" + to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		log.Printf("Failed to send SMS to %s: %v", to, err)
	}
}
