package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/notetime/booking-api/internal/config"
	"github.com/notetime/booking-api/internal/models"
)

// Mailer envia confirmação/cancelamento por e-mail. Best-effort: falha
// de envio é logada e nunca vira erro de agendamento.
type Mailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.SMTPFrom,
	}
}

func (m *Mailer) SendConfirmation(b *models.Booking) {
	m.send(
		b.ClientEmail,
		"Agendamento Confirmado - NoteTime",
		m.confirmationBody(b),
	)
}

func (m *Mailer) SendCancellation(b *models.Booking) {
	m.send(
		b.ClientEmail,
		"Agendamento Cancelado - NoteTime",
		m.cancellationBody(b),
	)
}

func (m *Mailer) SendReminder(b *models.Booking) {
	m.send(
		b.ClientEmail,
		"Lembrete de Agendamento - NoteTime",
		m.reminderBody(b),
	)
}

func (m *Mailer) send(to, subject, body string) {
	if m.host == "" || to == "" {
		return
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	addr := m.host + ":" + m.port

	go func() {
		if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
			log.Println("mailer error:", err)
		}
	}()
}

func (m *Mailer) confirmationBody(b *models.Booking) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Olá %s,\n\n", b.ClientName)
	sb.WriteString("Seu agendamento foi registrado com sucesso!\n\n")
	fmt.Fprintf(&sb, "Data: %s\n", b.StartTime.Format("02/01/2006"))
	fmt.Fprintf(&sb, "Horário: %s\n", b.StartTime.Format("15:04"))
	fmt.Fprintf(&sb, "Barbeiro: %s\n\n", b.StaffName)
	sb.WriteString("Serviços:\n")
	for _, it := range b.Items {
		fmt.Fprintf(&sb, "  - %s - %d min - R$ %s\n", it.ServiceName, it.DurationMin, it.UnitPrice.StringFixed(2))
	}
	fmt.Fprintf(&sb, "\nValor total: R$ %s\n\n", b.TotalPrice.StringFixed(2))
	sb.WriteString("Aguardamos você!\nNoteTime - Sistema de Agendamento\n")
	return sb.String()
}

func (m *Mailer) cancellationBody(b *models.Booking) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Olá %s,\n\n", b.ClientName)
	fmt.Fprintf(
		&sb,
		"Seu agendamento de %s às %s com %s foi cancelado.\n\n",
		b.StartTime.Format("02/01/2006"),
		b.StartTime.Format("15:04"),
		b.StaffName,
	)
	sb.WriteString("NoteTime - Sistema de Agendamento\n")
	return sb.String()
}

func (m *Mailer) reminderBody(b *models.Booking) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Olá %s,\n\n", b.ClientName)
	fmt.Fprintf(
		&sb,
		"Lembrete: você tem horário amanhã, %s às %s, com %s (%s).\n\n",
		b.StartTime.Format("02/01/2006"),
		b.StartTime.Format("15:04"),
		b.StaffName,
		b.ServiceNames(),
	)
	sb.WriteString("Aguardamos você!\nNoteTime - Sistema de Agendamento\n")
	return sb.String()
}
