package services

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoubfs/rota/internal/models"
	"github.com/ayoubfs/rota/internal/planning"
)

type profileDirectoryStub struct {
	profiles map[uint]models.User
	listErr  error
}

func newProfileDirectoryStub(users ...models.User) *profileDirectoryStub {
	stub := &profileDirectoryStub{profiles: make(map[uint]models.User)}
	for _, user := range users {
		stub.profiles[user.ID] = user
	}
	return stub
}

func (stub *profileDirectoryStub) FindByID(userID uint) (models.User, error) {
	user, ok := stub.profiles[userID]
	if !ok {
		return models.User{}, errors.New("record not found")
	}
	return user, nil
}

func (stub *profileDirectoryStub) List() ([]models.User, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	users := make([]models.User, 0, len(stub.profiles))
	for _, user := range stub.profiles {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func findActivity(t *testing.T, view GroupedView, date string, period planning.Period, activity string) (RosterActivity, bool) {
	t.Helper()
	for _, day := range view.Days {
		if day.Date.Format("2006-01-02") != date {
			continue
		}
		for _, rosterPeriod := range day.Periods {
			if rosterPeriod.Period != period {
				continue
			}
			for _, rosterActivity := range rosterPeriod.Activities {
				if rosterActivity.Activity == activity {
					return rosterActivity, true
				}
			}
		}
	}
	return RosterActivity{}, false
}

func TestAggregateGroupsByDatePeriodActivity(t *testing.T) {
	stub := newScheduleStoreStub()
	planner := NewPlannerService(stub)
	other := models.User{ID: 2, FullName: "S. Chraibi", Role: models.RoleResident}
	directory := newProfileDirectoryStub(testResident, other, testAdmin)
	roster := NewRosterService(stub, directory)
	monday := testDate(t, "2025-06-02")

	// Two residents pick the same Monday morning activity.
	for _, user := range []models.User{testResident, other} {
		_, err := planner.Reconcile(user, planning.WeekScope(user.ID, monday), []planning.Triple{
			triple(t, "2025-06-02", planning.PeriodMorning, "Équipe visite"),
		})
		require.NoError(t, err)
	}

	view, err := roster.Aggregate(testAdmin, monday, RosterModeDay, 0)

	require.NoError(t, err)
	require.Len(t, view.Days, 1)
	bucket, found := findActivity(t, view, "2025-06-02", planning.PeriodMorning, "Équipe visite")
	require.True(t, found)
	assert.Equal(t, []string{"R. Benali", "S. Chraibi"}, bucket.Names)
}

func TestAggregateResidentSeesOnlyOwnEntries(t *testing.T) {
	stub := newScheduleStoreStub()
	planner := NewPlannerService(stub)
	other := models.User{ID: 2, FullName: "S. Chraibi", Role: models.RoleResident}
	directory := newProfileDirectoryStub(testResident, other)
	roster := NewRosterService(stub, directory)
	monday := testDate(t, "2025-06-02")

	_, err := planner.Reconcile(other, planning.WeekScope(other.ID, monday), []planning.Triple{
		triple(t, "2025-06-02", planning.PeriodMorning, "Équipe visite"),
	})
	require.NoError(t, err)
	_, err = planner.Reconcile(testResident, planning.WeekScope(testResident.ID, monday), []planning.Triple{
		triple(t, "2025-06-02", planning.PeriodMorning, "Équipe HDJ"),
	})
	require.NoError(t, err)

	view, err := roster.Aggregate(testResident, monday, RosterModeDay, 0)

	require.NoError(t, err)
	_, sawOther := findActivity(t, view, "2025-06-02", planning.PeriodMorning, "Équipe visite")
	assert.False(t, sawOther, "resident must not see another user's entries")
	own, sawOwn := findActivity(t, view, "2025-06-02", planning.PeriodMorning, "Équipe HDJ")
	require.True(t, sawOwn)
	assert.Equal(t, []string{"R. Benali"}, own.Names)
}

func TestAggregateResidentCannotTargetAnotherUser(t *testing.T) {
	stub := newScheduleStoreStub()
	directory := newProfileDirectoryStub(testResident)
	roster := NewRosterService(stub, directory)

	_, err := roster.Aggregate(testResident, testDate(t, "2025-06-02"), RosterModeDay, 42)

	var authErr *AuthorizationError
	assert.ErrorAs(t, err, &authErr)
}

func TestAggregateWeekRoundTripsReconcile(t *testing.T) {
	stub := newScheduleStoreStub()
	planner := NewPlannerService(stub)
	directory := newProfileDirectoryStub(testResident)
	roster := NewRosterService(stub, directory)
	monday := testDate(t, "2025-06-02")

	intent := []planning.Triple{
		triple(t, "2025-06-02", planning.PeriodMorning, "Équipe visite"),
		triple(t, "2025-06-04", planning.PeriodAfternoon, "Glaucome"),
		triple(t, "2025-06-07", planning.PeriodFullDay, "Équipe de garde du weekend"),
	}
	_, err := planner.Reconcile(testResident, planning.WeekScope(testResident.ID, monday), intent)
	require.NoError(t, err)

	view, err := roster.Aggregate(testResident, monday, RosterModeWeek, 0)

	require.NoError(t, err)
	require.Len(t, view.Days, 6)
	for _, wanted := range intent {
		bucket, found := findActivity(t, view, wanted.Date.Format("2006-01-02"), wanted.Period, wanted.Activity)
		require.True(t, found, "missing %s", wanted.Key())
		assert.Equal(t, []string{"R. Benali"}, bucket.Names)
	}

	total := 0
	for _, day := range view.Days {
		for _, period := range day.Periods {
			total += len(period.Activities)
		}
	}
	assert.Equal(t, len(intent), total, "aggregate must return exactly the reconciled set")
}

func TestAggregatePeriodsKeepCanonicalOrder(t *testing.T) {
	stub := newScheduleStoreStub()
	planner := NewPlannerService(stub)
	directory := newProfileDirectoryStub(testResident)
	roster := NewRosterService(stub, directory)
	monday := testDate(t, "2025-06-02")

	_, err := planner.Reconcile(testResident, planning.WeekScope(testResident.ID, monday), []planning.Triple{
		triple(t, "2025-06-02", planning.PeriodFullDay, "Équipe de garde"),
		triple(t, "2025-06-02", planning.PeriodAfternoon, "CRM"),
		triple(t, "2025-06-02", planning.PeriodMorning, "Équipe visite"),
	})
	require.NoError(t, err)

	view, err := roster.Aggregate(testResident, monday, RosterModeDay, 0)

	require.NoError(t, err)
	require.Len(t, view.Days, 1)
	periods := view.Days[0].Periods
	require.Len(t, periods, 3)
	assert.Equal(t, planning.PeriodMorning, periods[0].Period)
	assert.Equal(t, planning.PeriodAfternoon, periods[1].Period)
	assert.Equal(t, planning.PeriodFullDay, periods[2].Period)
}

func TestAggregateMissingProfileFallsBackToRawID(t *testing.T) {
	stub := newScheduleStoreStub()
	planner := NewPlannerService(stub)
	ghost := models.User{ID: 7, Role: models.RoleResident}
	_, err := planner.Reconcile(ghost, planning.WeekScope(ghost.ID, testDate(t, "2025-06-02")), []planning.Triple{
		triple(t, "2025-06-02", planning.PeriodMorning, "Équipe visite"),
	})
	require.NoError(t, err)

	directory := newProfileDirectoryStub(testAdmin) // ghost has no profile
	roster := NewRosterService(stub, directory)

	view, err := roster.Aggregate(testAdmin, testDate(t, "2025-06-02"), RosterModeDay, 0)

	require.NoError(t, err)
	bucket, found := findActivity(t, view, "2025-06-02", planning.PeriodMorning, "Équipe visite")
	require.True(t, found)
	assert.Equal(t, []string{"7"}, bucket.Names)
}

func TestAggregateDeduplicatesNamesPerBucket(t *testing.T) {
	stub := newScheduleStoreStub()
	// Two rows with the same natural key, bypassing the reconciler.
	stub.entries[1] = entry(t, 1, "2025-06-02", planning.PeriodMorning, "Équipe visite")
	stub.entries[2] = entry(t, 2, "2025-06-02", planning.PeriodMorning, "Équipe visite")
	directory := newProfileDirectoryStub(testResident)
	roster := NewRosterService(stub, directory)

	view, err := roster.Aggregate(testResident, testDate(t, "2025-06-02"), RosterModeDay, 0)

	require.NoError(t, err)
	bucket, found := findActivity(t, view, "2025-06-02", planning.PeriodMorning, "Équipe visite")
	require.True(t, found)
	assert.Equal(t, []string{"R. Benali"}, bucket.Names)
}

func TestAggregateKeepsOrphanedActivitiesWithFlag(t *testing.T) {
	stub := newScheduleStoreStub()
	stub.entries[1] = entry(t, 1, "2025-06-02", planning.PeriodMorning, "Ancienne consultation")
	directory := newProfileDirectoryStub(testResident)
	roster := NewRosterService(stub, directory)

	view, err := roster.Aggregate(testResident, testDate(t, "2025-06-02"), RosterModeDay, 0)

	require.NoError(t, err)
	bucket, found := findActivity(t, view, "2025-06-02", planning.PeriodMorning, "Ancienne consultation")
	require.True(t, found, "orphaned entries must not be dropped")
	assert.True(t, bucket.Orphaned)
}

func TestAggregateEmptyRangeIsEmptyViewNotError(t *testing.T) {
	stub := newScheduleStoreStub()
	directory := newProfileDirectoryStub(testResident)
	roster := NewRosterService(stub, directory)

	view, err := roster.Aggregate(testResident, testDate(t, "2025-06-02"), RosterModeWeek, 0)

	require.NoError(t, err)
	require.Len(t, view.Days, 6)
	for _, day := range view.Days {
		assert.Empty(t, day.Periods)
	}
}

func TestAggregateRejectsUnknownMode(t *testing.T) {
	stub := newScheduleStoreStub()
	roster := NewRosterService(stub, newProfileDirectoryStub(testResident))

	_, err := roster.Aggregate(testResident, testDate(t, "2025-06-02"), "mois", 0)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
