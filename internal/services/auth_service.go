package services

import (
	"errors"
	"strings"

	"github.com/ayoubfs/rota/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthUserRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Authenticate checks the credentials and returns the matching user. The
// error never says whether the email or the password was wrong.
func (service *AuthService) Authenticate(email string, password string) (models.User, error) {
	user, err := service.users.FindByNormalizedEmail(NormalizeEmail(email))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

// CreateAccount registers a resident or admin profile. Caller enforces who
// is allowed to do that.
func (service *AuthService) CreateAccount(user *models.User, password string) error {
	if err := ValidatePasswordStrength(password); err != nil {
		return err
	}
	exists, err := service.users.ExistsByNormalizedEmail(NormalizeEmail(user.Email))
	if err != nil {
		return storeError("check email", err)
	}
	if exists {
		return validationErrorf("email %s already registered", user.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Email = NormalizeEmail(user.Email)
	user.PasswordHash = string(hash)
	if err := service.users.Create(user); err != nil {
		return storeError("create user", err)
	}
	return nil
}

// ChangePassword verifies the current password before storing the new one.
func (service *AuthService) ChangePassword(userID uint, currentPassword string, newPassword string) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return storeError("load user", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := service.users.UpdatePassword(userID, string(hash), false); err != nil {
		return storeError("update password", err)
	}
	return nil
}
