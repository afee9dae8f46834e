package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoubfs/rota/internal/models"
	"github.com/ayoubfs/rota/internal/planning"
)

func testDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.DateOnly, value)
	require.NoError(t, err)
	return parsed
}

func entry(t *testing.T, id uint, date string, period planning.Period, activity string) models.ScheduleEntry {
	t.Helper()
	return models.ScheduleEntry{
		ID:       id,
		UserID:   1,
		Date:     testDate(t, date),
		Period:   string(period),
		Activity: activity,
	}
}

func triple(t *testing.T, date string, period planning.Period, activity string) planning.Triple {
	t.Helper()
	return planning.Triple{Date: testDate(t, date), Period: period, Activity: activity}
}

func TestDiffEqualSetsIsEmpty(t *testing.T) {
	existing := []models.ScheduleEntry{
		entry(t, 1, "2025-06-02", planning.PeriodMorning, "Équipe visite"),
		entry(t, 2, "2025-06-02", planning.PeriodAfternoon, "CRM"),
	}
	target := []planning.Triple{
		triple(t, "2025-06-02", planning.PeriodMorning, "Équipe visite"),
		triple(t, "2025-06-02", planning.PeriodAfternoon, "CRM"),
	}

	toDelete, toInsert := Diff(existing, target)

	assert.Empty(t, toDelete)
	assert.Empty(t, toInsert)
}

func TestDiffSplitsInsertsAndDeletes(t *testing.T) {
	existing := []models.ScheduleEntry{
		entry(t, 10, "2025-06-02", planning.PeriodMorning, "Équipe visite"),
		entry(t, 11, "2025-06-03", planning.PeriodMorning, "OCT"),
	}
	target := []planning.Triple{
		triple(t, "2025-06-03", planning.PeriodMorning, "OCT"),
		triple(t, "2025-06-03", planning.PeriodMorning, "Laser"),
	}

	toDelete, toInsert := Diff(existing, target)

	assert.Equal(t, []uint{10}, toDelete)
	require.Len(t, toInsert, 1)
	assert.Equal(t, "Laser", toInsert[0].Activity)
}

func TestDiffEmptyTargetDeletesEverything(t *testing.T) {
	existing := []models.ScheduleEntry{
		entry(t, 1, "2025-06-02", planning.PeriodMorning, "Équipe visite"),
		entry(t, 2, "2025-06-02", planning.PeriodFullDay, "Équipe de garde"),
	}

	toDelete, toInsert := Diff(existing, nil)

	assert.Equal(t, []uint{1, 2}, toDelete)
	assert.Empty(t, toInsert)
}

func TestDiffIgnoresDuplicateTargetTriples(t *testing.T) {
	target := []planning.Triple{
		triple(t, "2025-06-02", planning.PeriodMorning, "Équipe visite"),
		triple(t, "2025-06-02", planning.PeriodMorning, "Équipe visite"),
	}

	toDelete, toInsert := Diff(nil, target)

	assert.Empty(t, toDelete)
	assert.Len(t, toInsert, 1)
}

func TestDiffDeletesDuplicatePersistedRows(t *testing.T) {
	// Two rows sharing a natural key should not occur, but if they do the
	// diff keeps one and removes the other.
	existing := []models.ScheduleEntry{
		entry(t, 7, "2025-06-02", planning.PeriodMorning, "Équipe visite"),
		entry(t, 8, "2025-06-02", planning.PeriodMorning, "Équipe visite"),
	}
	target := []planning.Triple{
		triple(t, "2025-06-02", planning.PeriodMorning, "Équipe visite"),
	}

	toDelete, toInsert := Diff(existing, target)

	assert.Empty(t, toInsert)
	assert.Equal(t, []uint{8}, toDelete)
}
