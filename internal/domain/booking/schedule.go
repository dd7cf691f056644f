package booking

import (
	"regexp"
	"time"

	"github.com/notetime/booking-api/internal/httperr"
)

// ===============================
// Horários
// ===============================

var timeOfDayRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidTimeOfDay valida "HH:MM" em formato 24h.
func ValidTimeOfDay(hm string) bool {
	return timeOfDayRe.MatchString(hm)
}

// CombineDateTime monta o instante agendado a partir da data e do
// horário "HH:MM". Aceita "2006-01-02" e o formato local "02/01/2006".
// Segundos e frações sempre zerados.
func CombineDateTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	if !ValidTimeOfDay(timeStr) {
		return time.Time{}, httperr.InvalidInput(
			"invalid_time",
			"Horário inválido: '"+timeStr+"' (esperado HH:MM em formato 24h).",
		)
	}

	var date time.Time
	var err error
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		date, err = time.ParseInLocation(layout, dateStr, loc)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, httperr.InvalidInput(
			"invalid_date",
			"Data inválida: '"+dateStr+"'.",
		)
	}

	hm, _ := time.Parse("15:04", timeStr)

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		hm.Hour(), hm.Minute(), 0, 0,
		loc,
	), nil
}

// DayWindow devolve [00:00, 24h) do dia do instante, no fuso dele.
func DayWindow(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.Add(24 * time.Hour)
}

// Overlaps aplica o teste de sobreposição de intervalos semiabertos
// [s1, s1+d1) e [s2, s2+d2). Encostar no limite não conflita.
func Overlaps(s1 time.Time, d1 time.Duration, s2 time.Time, d2 time.Duration) bool {
	return s1.Before(s2.Add(d2)) && s2.Before(s1.Add(d1))
}
