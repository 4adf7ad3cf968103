package repository

import (
	"github.com/vichu/gaming-addiction-api/internal/models"
)

// UserRepository defines the interface for account data access
type UserRepository interface {
	// Create inserts a new user. A unique-constraint violation is returned
	// as gorm.ErrDuplicatedKey.
	Create(user *models.User) error

	// FindByUsernameOrEmail finds a user whose username or email matches the identifier
	FindByUsernameOrEmail(identifier string) (*models.User, error)

	// ExistsByEmail reports whether a user with the given email exists
	ExistsByEmail(email string) (bool, error)

	// ExistsByUsername reports whether a user with the given username exists
	ExistsByUsername(username string) (bool, error)

	// RecordLogin appends a login event to the audit log
	RecordLogin(event *models.LoginEvent) error
}

// QuestionRepository defines the interface for survey content access
type QuestionRepository interface {
	// FindByAgeGroup lists the questions tagged with the age group, answers included
	FindByAgeGroup(ageGroup string) ([]models.Question, error)
}
