package services

import (
	"sort"
	"strconv"
	"time"

	"github.com/ayoubfs/rota/internal/models"
	"github.com/ayoubfs/rota/internal/planning"
)

const (
	RosterModeDay  = "jour"
	RosterModeWeek = "semaine"
)

// RosterStore is the read side of the persistence layer.
type RosterStore interface {
	ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.ScheduleEntry, error)
	ListRange(from time.Time, to time.Time) ([]models.ScheduleEntry, error)
}

// ProfileDirectory resolves user ids to profiles for display names.
type ProfileDirectory interface {
	FindByID(userID uint) (models.User, error)
	List() ([]models.User, error)
}

type RosterActivity struct {
	Activity string   `json:"activity"`
	Orphaned bool     `json:"orphaned,omitempty"`
	Names    []string `json:"names"`
}

type RosterPeriod struct {
	Period     planning.Period  `json:"period"`
	Activities []RosterActivity `json:"activities"`
}

type RosterDay struct {
	Date    time.Time        `json:"date"`
	Weekday planning.Weekday `json:"weekday"`
	Periods []RosterPeriod   `json:"periods"`
}

// GroupedView is the display-ready roster: date -> period -> activity ->
// display names. An empty view (all days without periods) is a valid result,
// not an error.
type GroupedView struct {
	Mode string      `json:"mode"`
	From time.Time   `json:"from"`
	To   time.Time   `json:"to"`
	Days []RosterDay `json:"days"`
}

type RosterService struct {
	entries  RosterStore
	profiles ProfileDirectory
}

func NewRosterService(entries RosterStore, profiles ProfileDirectory) *RosterService {
	return &RosterService{entries: entries, profiles: profiles}
}

// Aggregate builds the roster for the day or week around ref. Admins see
// every user; everyone else only themselves. targetUserID narrows an admin
// view to one resident; zero means the viewer's default (self, or all users
// for an admin).
func (service *RosterService) Aggregate(viewer models.User, ref time.Time, mode string, targetUserID uint) (GroupedView, error) {
	if mode != RosterModeDay && mode != RosterModeWeek {
		return GroupedView{}, validationErrorf("unknown roster mode %q", mode)
	}
	if targetUserID != 0 && !CanActFor(viewer, targetUserID) {
		return GroupedView{}, &AuthorizationError{Reason: "cannot view another resident's roster"}
	}

	from, to := planning.DateOf(ref), planning.DateOf(ref)
	if mode == RosterModeWeek {
		from, to = planning.WeekOf(ref)
	}

	entries, err := service.loadEntries(viewer, targetUserID, from, to)
	if err != nil {
		return GroupedView{}, err
	}

	names, err := service.displayNames(viewer, entries)
	if err != nil {
		return GroupedView{}, err
	}

	view := GroupedView{Mode: mode, From: from, To: to}
	scope := planning.Scope{From: from, To: to}
	for _, day := range scope.Dates() {
		view.Days = append(view.Days, service.buildDay(day, entries, names))
	}
	return view, nil
}

func (service *RosterService) loadEntries(viewer models.User, targetUserID uint, from time.Time, to time.Time) ([]models.ScheduleEntry, error) {
	// The visibility rule is applied here, before any query is built.
	userID := viewer.ID
	if targetUserID != 0 {
		userID = targetUserID
	} else if CanViewAll(viewer) {
		entries, err := service.entries.ListRange(from, to)
		if err != nil {
			return nil, storeError("list roster entries", err)
		}
		return entries, nil
	}

	entries, err := service.entries.ListByUserRange(userID, from, to)
	if err != nil {
		return nil, storeError("list roster entries", err)
	}
	return entries, nil
}

// displayNames resolves every user id appearing in entries. A missing
// profile degrades to the raw id instead of failing the view.
func (service *RosterService) displayNames(viewer models.User, entries []models.ScheduleEntry) (map[uint]string, error) {
	names := map[uint]string{viewer.ID: viewer.DisplayName()}

	if CanViewAll(viewer) {
		profiles, err := service.profiles.List()
		if err != nil {
			return nil, storeError("list profiles", err)
		}
		for _, profile := range profiles {
			names[profile.ID] = profile.DisplayName()
		}
	}

	for _, entry := range entries {
		if _, known := names[entry.UserID]; known {
			continue
		}
		profile, err := service.profiles.FindByID(entry.UserID)
		if err != nil {
			names[entry.UserID] = strconv.FormatUint(uint64(entry.UserID), 10)
			continue
		}
		names[entry.UserID] = profile.DisplayName()
	}
	return names, nil
}

func (service *RosterService) buildDay(date time.Time, entries []models.ScheduleEntry, names map[uint]string) RosterDay {
	weekday, _ := planning.WeekdayOf(date)
	day := RosterDay{Date: date, Weekday: weekday}

	byPeriod := make(map[planning.Period]map[string][]uint)
	for _, entry := range entries {
		if !planning.DateOf(entry.Date).Equal(date) {
			continue
		}
		period := planning.Period(entry.Period)
		if byPeriod[period] == nil {
			byPeriod[period] = make(map[string][]uint)
		}
		byPeriod[period][entry.Activity] = append(byPeriod[period][entry.Activity], entry.UserID)
	}

	for _, period := range planning.PeriodOrder {
		buckets := byPeriod[period]
		if len(buckets) == 0 {
			continue
		}
		day.Periods = append(day.Periods, buildPeriod(weekday, period, buckets, names))
	}
	return day
}

func buildPeriod(weekday planning.Weekday, period planning.Period, buckets map[string][]uint, names map[uint]string) RosterPeriod {
	result := RosterPeriod{Period: period}

	// Template order first, then any orphaned activities a template change
	// left behind, alphabetically. Orphans stay visible with a flag instead
	// of being dropped.
	templated := planning.ActivitiesOf(weekday, period)
	remaining := make(map[string]struct{}, len(buckets))
	for activity := range buckets {
		remaining[activity] = struct{}{}
	}

	for _, activity := range templated {
		if _, present := remaining[activity]; !present {
			continue
		}
		delete(remaining, activity)
		result.Activities = append(result.Activities, RosterActivity{
			Activity: activity,
			Names:    resolveNames(buckets[activity], names),
		})
	}

	orphans := make([]string, 0, len(remaining))
	for activity := range remaining {
		orphans = append(orphans, activity)
	}
	sort.Strings(orphans)
	for _, activity := range orphans {
		result.Activities = append(result.Activities, RosterActivity{
			Activity: activity,
			Orphaned: true,
			Names:    resolveNames(buckets[activity], names),
		})
	}
	return result
}

// resolveNames maps user ids to display names, dropping duplicates so a
// name never appears twice in one bucket.
func resolveNames(userIDs []uint, names map[uint]string) []string {
	resolved := make([]string, 0, len(userIDs))
	seen := make(map[string]struct{}, len(userIDs))
	for _, userID := range userIDs {
		name := names[userID]
		if name == "" {
			name = strconv.FormatUint(uint64(userID), 10)
		}
		if _, duplicate := seen[name]; duplicate {
			continue
		}
		seen[name] = struct{}{}
		resolved = append(resolved, name)
	}
	sort.Strings(resolved)
	return resolved
}
