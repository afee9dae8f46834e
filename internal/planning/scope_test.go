package planning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.DateOnly, value)
	require.NoError(t, err)
	return parsed
}

func TestWeekScopeCoversMondayToSaturday(t *testing.T) {
	scope := WeekScope(1, date(t, "2025-06-04")) // a Wednesday

	assert.Equal(t, date(t, "2025-06-02"), scope.From)
	assert.Equal(t, date(t, "2025-06-07"), scope.To)
	assert.Len(t, scope.Dates(), 6)
}

func TestWeekScopeOnSundayResolvesToPreviousMonday(t *testing.T) {
	scope := WeekScope(1, date(t, "2025-06-08"))

	assert.Equal(t, date(t, "2025-06-02"), scope.From)
}

func TestScopeValidateRejectsInvertedRange(t *testing.T) {
	scope := Scope{UserID: 1, From: date(t, "2025-06-07"), To: date(t, "2025-06-02")}

	assert.ErrorIs(t, scope.Validate(), ErrInvertedRange)
}

func TestActivitiesInScopeWithoutFilterCoversTheDay(t *testing.T) {
	scope := DayScope(1, date(t, "2025-06-02"), "") // Monday

	activities := ActivitiesInScope(scope)

	assert.Contains(t, activities, "Équipe visite")
	assert.Contains(t, activities, "CRM")
	assert.Contains(t, activities, "Équipe de garde")
	assert.NotContains(t, activities, "CS infectieuse") // Tuesday only
}

func TestActivitiesInScopeWithCategoryFilter(t *testing.T) {
	scope := DayScope(1, date(t, "2025-06-02"), CategoryBloc) // Monday, bloc

	activities := ActivitiesInScope(scope)

	assert.Contains(t, activities, "Petite chirurgie")
	assert.Contains(t, activities, "Équipe 2ème salle")
	assert.NotContains(t, activities, "Équipe visite")   // service
	assert.NotContains(t, activities, "Équipe de garde") // garde
}

func TestCandidateTriplesEmptyForSunday(t *testing.T) {
	sunday := date(t, "2025-06-08")
	scope := Scope{UserID: 1, From: sunday, To: sunday}

	assert.Empty(t, CandidateTriples(scope))
}

func TestCandidateTriplesKeepTemplateOrder(t *testing.T) {
	scope := DayScope(1, date(t, "2025-06-07"), "") // Saturday

	triples := CandidateTriples(scope)

	require.Len(t, triples, 2)
	assert.Equal(t, "Équipe visite", triples[0].Activity)
	assert.Equal(t, PeriodMorning, triples[0].Period)
	assert.Equal(t, "Équipe de garde du weekend", triples[1].Activity)
	assert.Equal(t, PeriodFullDay, triples[1].Period)
}

func TestScopeMatchesIgnoresUnknownActivityUnderFilter(t *testing.T) {
	filtered := Scope{Category: CategoryBloc}
	open := Scope{}

	assert.False(t, filtered.Matches("Ancienne activité"))
	assert.True(t, open.Matches("Ancienne activité"))
}

func TestTripleKeyIsStable(t *testing.T) {
	triple := Triple{Date: date(t, "2025-06-02"), Period: PeriodMorning, Activity: "OCT"}

	assert.Equal(t, "2025-06-02|Matin|OCT", triple.Key())
}
