package tasks

import (
	"fmt"
	"time"

	"github.com/taskive/taskive/internal/constants"
)

// resolveDeadline turns display date and time strings into an absolute
// deadline. Date only means end of that day (23:59); time only means today
// at that time; both means the exact combination. Missing or unparseable
// input yields no deadline rather than an error.
func resolveDeadline(date, timeOfDay string, now time.Time) *time.Time {
	switch {
	case date == "" && timeOfDay == "":
		return nil

	case timeOfDay == "":
		d, err := time.ParseInLocation(constants.DateFormat, date, now.Location())
		if err != nil {
			return nil
		}
		deadline := time.Date(d.Year(), d.Month(), d.Day(),
			constants.EndOfDayHour, constants.EndOfDayMinute, 0, 0, now.Location())
		return &deadline

	case date == "":
		t, err := time.Parse(constants.TimeFormat, timeOfDay)
		if err != nil {
			return nil
		}
		deadline := time.Date(now.Year(), now.Month(), now.Day(),
			t.Hour(), t.Minute(), 0, 0, now.Location())
		return &deadline

	default:
		combined, err := time.ParseInLocation(
			constants.DateFormat+" "+constants.TimeFormat,
			date+" "+timeOfDay, now.Location())
		if err != nil {
			return nil
		}
		return &combined
	}
}

// displayDatetime joins the raw date and time inputs into the stored display
// text.
func displayDatetime(date, timeOfDay string) string {
	switch {
	case date == "" && timeOfDay == "":
		return ""
	case timeOfDay == "":
		return date
	case date == "":
		return timeOfDay
	default:
		return date + ", " + timeOfDay
	}
}

// timeLeftLabel derives the "time remaining" label from the deadline:
// exceeded once the deadline is reached, otherwise the largest applicable
// unit among minutes, hours, and days.
func timeLeftLabel(deadline *time.Time, now time.Time) string {
	if deadline == nil {
		return "No due date"
	}
	if !now.Before(*deadline) {
		return "Due date exceeded"
	}

	until := deadline.Sub(now)
	switch {
	case until < time.Minute:
		return "Under a minute left"
	case until < time.Hour:
		return pluralLeft(int(until.Minutes()), "minute")
	case until < 24*time.Hour:
		return pluralLeft(int(until.Hours()), "hour")
	default:
		return pluralLeft(int(until.Hours()/24), "day")
	}
}

func pluralLeft(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s left", unit)
	}
	return fmt.Sprintf("%d %ss left", n, unit)
}
