package schedule

import "errors"

// ViewMode is the granularity of a scheduling query
type ViewMode string

const (
	ViewModeDay   ViewMode = "day"
	ViewModeWeek  ViewMode = "week"
	ViewModeMonth ViewMode = "month"
)

// ErrInvalidViewMode is returned for any mode outside {day, week, month}.
// An absent mode defaults to day; garbage does not.
var ErrInvalidViewMode = errors.New("invalid view mode, must be day, week or month")

// ParseViewMode parses a query-string view mode. Empty input means the
// caller did not choose, so the day default applies.
func ParseViewMode(s string) (ViewMode, error) {
	switch s {
	case "":
		return ViewModeDay, nil
	case "day":
		return ViewModeDay, nil
	case "week":
		return ViewModeWeek, nil
	case "month":
		return ViewModeMonth, nil
	default:
		return "", ErrInvalidViewMode
	}
}
