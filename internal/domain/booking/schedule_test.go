package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notetime/booking-api/internal/httperr"
)

func TestValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "09:30", "14:00", "23:59"}
	for _, hm := range valid {
		assert.True(t, ValidTimeOfDay(hm), hm)
	}

	invalid := []string{"24:00", "9:30", "14:60", "14h30", "1400", "", "14:00:00"}
	for _, hm := range invalid {
		assert.False(t, ValidTimeOfDay(hm), hm)
	}
}

func TestCombineDateTime(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	t.Run("formato ISO", func(t *testing.T) {
		got, err := CombineDateTime("2025-06-10", "14:30", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 10, 14, 30, 0, 0, loc), got)
	})

	t.Run("formato local", func(t *testing.T) {
		got, err := CombineDateTime("10/06/2025", "14:30", loc)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 10, 14, 30, 0, 0, loc), got)
	})

	t.Run("segundos sempre zerados", func(t *testing.T) {
		got, err := CombineDateTime("2025-06-10", "23:59", loc)
		require.NoError(t, err)
		assert.Zero(t, got.Second())
		assert.Zero(t, got.Nanosecond())
	})

	t.Run("data inválida", func(t *testing.T) {
		_, err := CombineDateTime("10-06-2025", "14:30", loc)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "invalid_date"))
	})

	t.Run("horário inválido", func(t *testing.T) {
		_, err := CombineDateTime("2025-06-10", "25:00", loc)
		require.Error(t, err)
		assert.True(t, httperr.IsBusiness(err, "invalid_time"))
	})
}

func TestDayWindow(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	at := time.Date(2025, 6, 10, 14, 30, 0, 0, loc)
	from, to := DayWindow(at)

	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, loc), from)
	assert.Equal(t, 24*time.Hour, to.Sub(from))
}

func TestOverlaps(t *testing.T) {
	base := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		s1   time.Time
		d1   time.Duration
		s2   time.Time
		d2   time.Duration
		want bool
	}{
		{
			name: "mesmo início",
			s1:   base, d1: 30 * time.Minute,
			s2: base, d2: 45 * time.Minute,
			want: true,
		},
		{
			name: "começo dentro do outro",
			s1:   base.Add(20 * time.Minute), d1: 30 * time.Minute,
			s2: base, d2: 50 * time.Minute,
			want: true,
		},
		{
			name: "encostado no fim não conflita",
			s1:   base.Add(30 * time.Minute), d1: 30 * time.Minute,
			s2: base, d2: 30 * time.Minute,
			want: false,
		},
		{
			name: "encostado no começo não conflita",
			s1:   base, d1: 30 * time.Minute,
			s2: base.Add(30 * time.Minute), d2: 30 * time.Minute,
			want: false,
		},
		{
			name: "um contém o outro",
			s1:   base, d1: 2 * time.Hour,
			s2: base.Add(30 * time.Minute), d2: 15 * time.Minute,
			want: true,
		},
		{
			name: "totalmente separados",
			s1:   base, d1: 30 * time.Minute,
			s2: base.Add(3 * time.Hour), d2: 30 * time.Minute,
			want: false,
		},
		{
			name: "um minuto de sobreposição",
			s1:   base, d1: 31 * time.Minute,
			s2: base.Add(30 * time.Minute), d2: 30 * time.Minute,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.s1, tt.d1, tt.s2, tt.d2))
			// a relação é simétrica
			assert.Equal(t, tt.want, Overlaps(tt.s2, tt.d2, tt.s1, tt.d1))
		})
	}
}
