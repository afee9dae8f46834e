package planning

import "time"

// Period is a named time-of-day slot. Labels are the ones the department
// actually uses on paper, so they double as display strings.
type Period string

const (
	PeriodMorning   Period = "Matin"
	PeriodAfternoon Period = "Après-midi"
	PeriodFullDay   Period = "Matin & Après-midi"
)

// PeriodOrder is the canonical rendering order. Never sort periods lexically.
var PeriodOrder = []Period{PeriodMorning, PeriodAfternoon, PeriodFullDay}

// Weekday is a working day of the department week. Sunday is not part of the
// template and never maps to a Weekday.
type Weekday string

const (
	Monday    Weekday = "Lundi"
	Tuesday   Weekday = "Mardi"
	Wednesday Weekday = "Mercredi"
	Thursday  Weekday = "Jeudi"
	Friday    Weekday = "Vendredi"
	Saturday  Weekday = "Samedi"
)

var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekdayOf maps a calendar date to its template weekday. The second return
// is false for Sunday, which has no periods.
func WeekdayOf(date time.Time) (Weekday, bool) {
	switch date.Weekday() {
	case time.Monday:
		return Monday, true
	case time.Tuesday:
		return Tuesday, true
	case time.Wednesday:
		return Wednesday, true
	case time.Thursday:
		return Thursday, true
	case time.Friday:
		return Friday, true
	case time.Saturday:
		return Saturday, true
	}
	return "", false
}

// Template is the fixed weekly activity plan: weekday -> period -> ordered
// activity names. It is static configuration, loaded once and never written.
var Template = map[Weekday]map[Period][]string{
	Monday: {
		PeriodMorning: {
			"Équipe visite", "Équipe HDJ", "Équipe 2ème salle",
			"Équipe 3ème salle", "Petite chirurgie",
			"Équipe entrant", "Nouveaux malades",
		},
		PeriodAfternoon: {"Équipe contre visite", "CRM", "Annexes"},
		PeriodFullDay:   {"Équipe de garde"},
	},
	Tuesday: {
		PeriodMorning: {
			"Équipe visite", "CS infectieuse", "CS Pr Hidan",
			"CS Pr Rachid", "CS Pr Hammouch", "Angiographie",
			"Champs visuels (CV)", "OCT", "Topographie", "Laser",
			"Cours des externes", "Strabologie",
			"Centralisation", "Équipe dossier", "Interprétation",
		},
		PeriodFullDay: {"Équipe de garde"},
	},
	Wednesday: {
		PeriodMorning: {
			"Équipe visite", "Équipe 3ème salle", "Équipe HDJ",
			"Équipe 2ème salle", "Petite chirurgie",
		},
		PeriodAfternoon: {"Équipe contre visite", "Glaucome", "Uvéite"},
		PeriodFullDay:   {"Équipe de garde"},
	},
	Thursday: {
		PeriodMorning: {
			"Équipe visite", "Cours des externes", "CS Pr Benhmidoune",
			"CS Pr Bentouhami", "CS Pr Mchachi", "Équipe dossier",
			"Laser", "OCT", "Angiographie", "Topographie",
			"Champs visuels (CV)", "Interprétation",
			"Nouveaux malades", "Strabologie", "CS rétinopathie diabétique",
		},
		PeriodAfternoon: {"Équipe contre visite", "CS Cornée", "CS Réfraction"},
		PeriodFullDay:   {"Équipe de garde"},
	},
	Friday: {
		PeriodMorning: {
			"Équipe visite", "Équipe 3ème salle", "Équipe 2ème salle",
			"Équipe HDJ", "Petite chirurgie", "Équipe dossier",
			"OCT", "Laser", "Angiographie",
			"Champs visuels (CV)", "Topographie", "Interprétation",
		},
		PeriodAfternoon: {"Équipe contre visite", "CS Réfraction"},
		PeriodFullDay:   {"Équipe de garde"},
	},
	Saturday: {
		PeriodMorning: {"Équipe visite"},
		PeriodFullDay: {"Équipe de garde du weekend"},
	},
}

// PeriodsOf returns the periods a weekday actually has, in canonical order.
func PeriodsOf(weekday Weekday) []Period {
	dayPlan, ok := Template[weekday]
	if !ok {
		return nil
	}
	periods := make([]Period, 0, len(PeriodOrder))
	for _, period := range PeriodOrder {
		if len(dayPlan[period]) > 0 {
			periods = append(periods, period)
		}
	}
	return periods
}

// ActivitiesOf returns the template's declared activity order for one
// weekday and period.
func ActivitiesOf(weekday Weekday, period Period) []string {
	dayPlan, ok := Template[weekday]
	if !ok {
		return nil
	}
	return dayPlan[period]
}

// InTemplate reports whether the activity is declared for the weekday and
// period. Persisted entries that fail this check are orphans left behind by
// a template change; the roster keeps them with a degraded label.
func InTemplate(weekday Weekday, period Period, activity string) bool {
	for _, candidate := range ActivitiesOf(weekday, period) {
		if candidate == activity {
			return true
		}
	}
	return false
}
