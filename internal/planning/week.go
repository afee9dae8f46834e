package planning

import "time"

// DateOf normalizes a timestamp to its calendar date at midnight UTC.
// Every date handled by the planner goes through this so that range
// comparisons and natural keys never depend on the wall clock.
func DateOf(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// WeekOf returns the six-day department week containing ref: Monday through
// Saturday. A Sunday resolves to the week that began the previous Monday.
func WeekOf(ref time.Time) (monday time.Time, saturday time.Time) {
	day := DateOf(ref)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	monday = day.AddDate(0, 0, -offset)
	saturday = monday.AddDate(0, 0, 5)
	return monday, saturday
}
