package db

import (
	"time"

	"github.com/ayoubfs/rota/internal/models"
	"gorm.io/gorm"
)

type ScheduleRepository struct {
	database *gorm.DB
}

func NewScheduleRepository(database *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{database: database}
}

// ListByUserRange returns one user's entries whose date falls inside the
// inclusive [from, to] range.
func (repo *ScheduleRepository) ListByUserRange(userID uint, from time.Time, to time.Time) ([]models.ScheduleEntry, error) {
	entries := make([]models.ScheduleEntry, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to.AddDate(0, 0, 1)).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListRange returns every user's entries in the inclusive range. Admin-only
// read path; visibility is decided before this query is built.
func (repo *ScheduleRepository) ListRange(from time.Time, to time.Time) ([]models.ScheduleEntry, error) {
	entries := make([]models.ScheduleEntry, 0)
	if err := repo.database.
		Where("date >= ? AND date < ?", from, to.AddDate(0, 0, 1)).
		Order("date ASC, user_id ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ApplyBatch commits the reconciler's diff as one unit: either every delete
// and every insert applies, or the transaction rolls back and prior state is
// untouched.
func (repo *ScheduleRepository) ApplyBatch(deleteIDs []uint, inserts []models.ScheduleEntry) error {
	if len(deleteIDs) == 0 && len(inserts) == 0 {
		return nil
	}
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if len(deleteIDs) > 0 {
			if err := tx.Delete(&models.ScheduleEntry{}, deleteIDs).Error; err != nil {
				return err
			}
		}
		if len(inserts) > 0 {
			if err := tx.Create(&inserts).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
