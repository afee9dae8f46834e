package planning

import (
	"errors"
	"time"
)

var ErrInvertedRange = errors.New("scope range is inverted")

// Scope bounds one reconcile or lookup call: a user, an inclusive date
// range and an optional category filter. Entries outside the scope must
// never be touched by a call made with it.
type Scope struct {
	UserID   uint
	From     time.Time
	To       time.Time
	Category CategoryKey // empty means all categories
}

// WeekScope covers the six-day department week around ref, all categories.
func WeekScope(userID uint, ref time.Time) Scope {
	from, to := WeekOf(ref)
	return Scope{UserID: userID, From: from, To: to}
}

// DayScope covers a single date restricted to one category.
func DayScope(userID uint, date time.Time, category CategoryKey) Scope {
	day := DateOf(date)
	return Scope{UserID: userID, From: day, To: day, Category: category}
}

func (scope Scope) Validate() error {
	if scope.To.Before(scope.From) {
		return ErrInvertedRange
	}
	return nil
}

// Dates lists every calendar date in the scope, normalized to midnight UTC.
func (scope Scope) Dates() []time.Time {
	from := DateOf(scope.From)
	to := DateOf(scope.To)
	dates := make([]time.Time, 0, 7)
	for cursor := from; !cursor.After(to); cursor = cursor.AddDate(0, 0, 1) {
		dates = append(dates, cursor)
	}
	return dates
}

// Matches reports whether an activity belongs to the scope's category.
// Without a filter every activity matches; with one, activities missing from
// the category map (orphans of an old template) do not match and are
// therefore left alone.
func (scope Scope) Matches(activity string) bool {
	if scope.Category == "" {
		return true
	}
	category, err := CategoryOf(activity)
	if err != nil {
		return false
	}
	return category == scope.Category
}

// Triple identifies one selectable slot: a date, a period of that date's
// weekday and one of the period's activities.
type Triple struct {
	Date     time.Time
	Period   Period
	Activity string
}

// Key is the natural identity of a triple, used for set arithmetic.
func (t Triple) Key() string {
	return t.Date.Format(time.DateOnly) + "|" + string(t.Period) + "|" + t.Activity
}

// ActivitiesInScope derives the set of activities a scope may legally touch
// from the static catalogs. Pure and deterministic; Sundays and weekdays
// without matching activities contribute nothing.
func ActivitiesInScope(scope Scope) map[string]struct{} {
	activities := make(map[string]struct{})
	for _, triple := range CandidateTriples(scope) {
		activities[triple.Activity] = struct{}{}
	}
	return activities
}

// CandidateTriples expands a scope into every (date, period, activity)
// triple the template allows within it, in template order.
func CandidateTriples(scope Scope) []Triple {
	triples := make([]Triple, 0, 64)
	for _, date := range scope.Dates() {
		weekday, ok := WeekdayOf(date)
		if !ok {
			continue
		}
		for _, period := range PeriodsOf(weekday) {
			for _, activity := range ActivitiesOf(weekday, period) {
				if !scope.Matches(activity) {
					continue
				}
				triples = append(triples, Triple{Date: date, Period: period, Activity: activity})
			}
		}
	}
	return triples
}
