package schedule

import "time"

// DateRange is the absolute time window of a scheduling query. Both ends
// are inclusive at millisecond precision: [Start, End] with End at
// 23:59:59.999 of the last day. Repository filtering uses <= on both
// bounds to match.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// StartUnix returns the range start as epoch seconds, truncated toward zero.
func (r DateRange) StartUnix() int64 {
	return r.Start.Unix()
}

// EndUnix returns the range end as epoch seconds, truncated toward zero.
func (r DateRange) EndUnix() int64 {
	return r.End.Unix()
}

// Contains reports whether t falls inside the closed range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Resolve converts a reference date and view mode into an absolute range.
//
//	day:   the reference date's calendar day
//	week:  the Sunday on or before the reference date through the
//	       following Saturday (weeks always begin on Sunday)
//	month: the 1st through the last calendar day of the reference month
//
// The reference's location is kept so day boundaries follow its zone.
func Resolve(ref time.Time, mode ViewMode) (DateRange, error) {
	y, m, d := ref.Date()
	loc := ref.Location()

	switch mode {
	case ViewModeDay:
		return DateRange{
			Start: time.Date(y, m, d, 0, 0, 0, 0, loc),
			End:   endOfDay(y, m, d, loc),
		}, nil

	case ViewModeWeek:
		sunday := d - int(ref.Weekday())
		return DateRange{
			Start: time.Date(y, m, sunday, 0, 0, 0, 0, loc),
			End:   endOfDay(y, m, sunday+6, loc),
		}, nil

	case ViewModeMonth:
		// Day 0 of the next month normalizes to the last day of this one
		return DateRange{
			Start: time.Date(y, m, 1, 0, 0, 0, 0, loc),
			End:   endOfDay(y, m+1, 0, loc),
		}, nil

	default:
		return DateRange{}, ErrInvalidViewMode
	}
}

func endOfDay(y int, m time.Month, d int, loc *time.Location) time.Time {
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), loc)
}
