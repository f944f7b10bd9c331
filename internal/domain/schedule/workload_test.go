package schedule

import (
	"testing"
	"time"

	"github.com/serenita/spa-api/internal/domain/booking"
)

func durBooking(minutes int, cancelled bool) *booking.Booking {
	return &booking.Booking{
		Day:             date(2024, time.June, 10),
		DurationMinutes: minutes,
		Cancelled:       cancelled,
	}
}

func TestWorkload(t *testing.T) {
	tests := []struct {
		name     string
		bookings []*booking.Booking
		want     float64
	}{
		{name: "no bookings", bookings: nil, want: 0},
		{
			name:     "three treatments against the 8h reference",
			bookings: []*booking.Booking{durBooking(120, false), durBooking(90, false), durBooking(60, false)},
			want:     56.25, // 270 / 480 * 100
		},
		{
			name:     "cancelled bookings contribute nothing",
			bookings: []*booking.Booking{durBooking(120, true), durBooking(60, false)},
			want:     12.5,
		},
		{
			name:     "clamped at 100",
			bookings: []*booking.Booking{durBooking(300, false), durBooking(300, false)},
			want:     100,
		},
		{
			name:     "exactly the reference day",
			bookings: []*booking.Booking{durBooking(480, false)},
			want:     100,
		},
		{
			name:     "non-positive durations are ignored",
			bookings: []*booking.Booking{durBooking(-30, false), durBooking(0, false), durBooking(48, false)},
			want:     10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Workload(tt.bookings); got != tt.want {
				t.Errorf("Workload() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWorkloadMonotonic(t *testing.T) {
	var bookings []*booking.Booking
	prev := 0.0
	for i := 0; i < 20; i++ {
		bookings = append(bookings, durBooking(30, false))
		got := Workload(bookings)
		if got < prev {
			t.Fatalf("workload decreased from %v to %v after adding minutes", prev, got)
		}
		if got > 100 {
			t.Fatalf("workload exceeded 100: %v", got)
		}
		prev = got
	}
}
