package models

import "time"

// ScheduleEntry is one persisted fact: the user performs the activity in the
// given period on the given date. The (user_id, date, period, activity)
// tuple is the natural key; the row id is only a storage key. Entries are
// never updated in place, reconciliation deletes and recreates them.
type ScheduleEntry struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_user_date_period_activity"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_date_period_activity"`
	Weekday   string    `gorm:"not null"`
	Period    string    `gorm:"not null;uniqueIndex:uidx_user_date_period_activity"`
	Activity  string    `gorm:"not null;uniqueIndex:uidx_user_date_period_activity"`
	CreatedAt time.Time `gorm:"not null"`
}
