package router

import (
	"fmt"
	"time"
)

// Date format
const (
	DateFormatISO = "2006-01-02"
)

// buildTimeContext gives the model today's date so relative travel dates
// can be resolved.
func buildTimeContext(now time.Time) string {
	tomorrow := now.AddDate(0, 0, 1)

	// Upcoming Saturday; today when it is Saturday.
	untilSat := (int(time.Saturday) - int(now.Weekday()) + 7) % 7
	saturday := now.AddDate(0, 0, untilSat)
	sunday := saturday.AddDate(0, 0, 1)

	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format(DateFormatISO),
		now.Weekday().String(),
		tomorrow.Format(DateFormatISO),
		saturday.Format(DateFormatISO),
		sunday.Format(DateFormatISO),
	)
}
