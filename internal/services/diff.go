package services

import (
	"sort"

	"github.com/ayoubfs/rota/internal/models"
	"github.com/ayoubfs/rota/internal/planning"
)

// Diff computes the minimal write set turning existing into target:
// persisted entries absent from target are deleted, target triples with no
// persisted row are inserted. Matching rows are left alone, which is what
// makes a repeated reconcile a no-op. Pure; storage never appears here.
func Diff(existing []models.ScheduleEntry, target []planning.Triple) (toDelete []uint, toInsert []planning.Triple) {
	targetKeys := make(map[string]struct{}, len(target))
	for _, triple := range target {
		targetKeys[triple.Key()] = struct{}{}
	}

	existingKeys := make(map[string]struct{}, len(existing))
	toDelete = make([]uint, 0)
	for _, entry := range existing {
		key := entryTriple(entry).Key()
		_, wanted := targetKeys[key]
		_, duplicate := existingKeys[key]
		if !wanted || duplicate {
			// Duplicate rows for one natural key should not exist; if one
			// slipped in, keep the first and drop the rest.
			toDelete = append(toDelete, entry.ID)
			continue
		}
		existingKeys[key] = struct{}{}
	}

	toInsert = make([]planning.Triple, 0)
	seen := make(map[string]struct{}, len(target))
	for _, triple := range target {
		key := triple.Key()
		if _, duplicate := seen[key]; duplicate {
			continue
		}
		seen[key] = struct{}{}
		if _, persisted := existingKeys[key]; persisted {
			continue
		}
		toInsert = append(toInsert, triple)
	}

	sort.Slice(toDelete, func(i, j int) bool { return toDelete[i] < toDelete[j] })
	sort.Slice(toInsert, func(i, j int) bool { return toInsert[i].Key() < toInsert[j].Key() })
	return toDelete, toInsert
}

func entryTriple(entry models.ScheduleEntry) planning.Triple {
	return planning.Triple{
		Date:     planning.DateOf(entry.Date),
		Period:   planning.Period(entry.Period),
		Activity: entry.Activity,
	}
}
