package services

import (
	"time"

	"github.com/ayoubfs/rota/internal/models"
	"github.com/ayoubfs/rota/internal/planning"
)

// ScheduleStore is the slice of the persistence layer the planner needs.
// ApplyBatch must be atomic: all deletes and inserts, or nothing.
type ScheduleStore interface {
	ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.ScheduleEntry, error)
	ApplyBatch(deleteIDs []uint, inserts []models.ScheduleEntry) error
}

type ReconcileResult struct {
	Inserted int `json:"inserted"`
	Deleted  int `json:"deleted"`
}

// PlannerService synchronizes a user's declared selections for one scope
// with the persisted entries, by atomic diff-and-write.
type PlannerService struct {
	entries ScheduleStore
	now     func() time.Time
}

func NewPlannerService(entries ScheduleStore) *PlannerService {
	return &PlannerService{entries: entries, now: time.Now}
}

// Reconcile makes the store agree with intent inside scope and touches
// nothing outside it. Entries in the date range that fall outside the
// scope's category are excluded from the diff entirely. Calling it twice
// with the same arguments reports zero writes the second time.
func (service *PlannerService) Reconcile(actor models.User, scope planning.Scope, intent []planning.Triple) (ReconcileResult, error) {
	if !CanActFor(actor, scope.UserID) {
		return ReconcileResult{}, &AuthorizationError{Reason: "cannot edit another resident's selections"}
	}
	if err := scope.Validate(); err != nil {
		return ReconcileResult{}, validationErrorf("%v", err)
	}
	if scope.Category != "" && !planning.ValidCategory(scope.Category) {
		return ReconcileResult{}, validationErrorf("unknown category %q", scope.Category)
	}

	candidates := planning.CandidateTriples(scope)
	candidateKeys := make(map[string]struct{}, len(candidates))
	for _, triple := range candidates {
		candidateKeys[triple.Key()] = struct{}{}
	}

	target := make([]planning.Triple, 0, len(intent))
	for _, triple := range intent {
		normalized := planning.Triple{
			Date:     planning.DateOf(triple.Date),
			Period:   triple.Period,
			Activity: triple.Activity,
		}
		if _, ok := candidateKeys[normalized.Key()]; !ok {
			return ReconcileResult{}, validationErrorf(
				"selection %s / %s / %s is not available in this scope",
				normalized.Date.Format(time.DateOnly), normalized.Period, normalized.Activity,
			)
		}
		target = append(target, normalized)
	}

	// A scope with nothing selectable (a Sunday-only range) is a no-op.
	if len(candidates) == 0 {
		return ReconcileResult{}, nil
	}

	persisted, err := service.entries.ListByUserRange(scope.UserID, scope.From, scope.To)
	if err != nil {
		return ReconcileResult{}, storeError("list entries", err)
	}

	inScope := make([]models.ScheduleEntry, 0, len(persisted))
	for _, entry := range persisted {
		if scope.Matches(entry.Activity) {
			inScope = append(inScope, entry)
		}
	}

	toDelete, toInsert := Diff(inScope, target)
	if len(toDelete) == 0 && len(toInsert) == 0 {
		return ReconcileResult{}, nil
	}

	inserts := make([]models.ScheduleEntry, 0, len(toInsert))
	createdAt := service.now()
	for _, triple := range toInsert {
		weekday, _ := planning.WeekdayOf(triple.Date)
		inserts = append(inserts, models.ScheduleEntry{
			UserID:    scope.UserID,
			Date:      triple.Date,
			Weekday:   string(weekday),
			Period:    string(triple.Period),
			Activity:  triple.Activity,
			CreatedAt: createdAt,
		})
	}

	if err := service.entries.ApplyBatch(toDelete, inserts); err != nil {
		return ReconcileResult{}, storeError("apply batch", err)
	}

	return ReconcileResult{Inserted: len(inserts), Deleted: len(toDelete)}, nil
}

// EntriesFor returns a user's persisted selections in the range as triples,
// used to pre-populate the editing forms.
func (service *PlannerService) EntriesFor(userID uint, from time.Time, to time.Time) ([]planning.Triple, error) {
	from, to = planning.DateOf(from), planning.DateOf(to)
	if to.Before(from) {
		return nil, validationErrorf("%v", planning.ErrInvertedRange)
	}

	persisted, err := service.entries.ListByUserRange(userID, from, to)
	if err != nil {
		return nil, storeError("list entries", err)
	}

	triples := make([]planning.Triple, 0, len(persisted))
	for _, entry := range persisted {
		triples = append(triples, entryTriple(entry))
	}
	return triples, nil
}
