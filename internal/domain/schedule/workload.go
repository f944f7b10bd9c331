package schedule

import "github.com/serenita/spa-api/internal/domain/booking"

// referenceDayMinutes is the 8-hour day a therapist's utilization is
// measured against.
const referenceDayMinutes = 8 * 60

// Workload returns a therapist's utilization percentage in [0, 100].
// Cancelled bookings contribute nothing, as do non-positive durations;
// minutes beyond the 8-hour reference clamp at 100.
func Workload(bookings []*booking.Booking) float64 {
	totalMinutes := 0
	for _, b := range bookings {
		if b.Cancelled || b.DurationMinutes <= 0 {
			continue
		}
		totalMinutes += b.DurationMinutes
	}
	if totalMinutes == 0 {
		return 0
	}
	pct := float64(totalMinutes) / referenceDayMinutes * 100
	if pct > 100 {
		return 100
	}
	return pct
}
