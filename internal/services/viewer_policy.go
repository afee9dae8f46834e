package services

import "github.com/ayoubfs/rota/internal/models"

func IsAdminUser(user models.User) bool {
	return user.Role == models.RoleAdmin
}

// CanActFor decides every write authorization: admins may edit any
// resident's selections, everyone may edit their own.
func CanActFor(actor models.User, targetUserID uint) bool {
	return IsAdminUser(actor) || actor.ID == targetUserID
}

// CanViewAll gates the all-users roster and the resident-picker reads.
func CanViewAll(viewer models.User) bool {
	return IsAdminUser(viewer)
}
