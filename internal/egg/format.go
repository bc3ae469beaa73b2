package egg

import (
	"fmt"
	"time"

	"github.com/gertd/go-pluralize"
)

var plural = pluralize.NewClient()

func count(word string, n int) string {
	return plural.Pluralize(word, n, true)
}

// FormatAge renders an age as "N days, N hours, and N minutes"
func FormatAge(a Age) string {
	return fmt.Sprintf(AgeFormat, count(WordDay, a.Days), count(WordHour, a.Hours), count(WordMinute, a.Minutes))
}

// FormatCountdown renders a countdown as "H hours and M minutes until feed",
// dropping the hour part when less than an hour is left
func FormatCountdown(c Countdown) string {
	hours := int(c.Remaining / time.Hour)
	minutes := int(c.Remaining%time.Hour) / int(time.Minute)
	if hours > 0 {
		return fmt.Sprintf(CountdownFormat, count(WordHour, hours), count(WordMinute, minutes), c.Action)
	}
	return fmt.Sprintf(CountdownMinutesFormat, count(WordMinute, minutes), c.Action)
}
