package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Schedule *ScheduleRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Schedule: NewScheduleRepository(database),
	}
}
