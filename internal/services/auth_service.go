package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/vichu/gaming-addiction-api/internal/models"
	"github.com/vichu/gaming-addiction-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials   = errors.New("invalid username/email or password")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// Per-field validation messages. The exact wording is part of the API contract
// consumed by the registration form.
const (
	msgFullNameRequired = "Full Name is required"
	msgEmailInvalid     = "Invalid email format"
	msgUsernameRequired = "Username is required"
	msgPasswordPolicy   = "Password must be at least 6 characters, contain 1 uppercase letter, and 1 special character"
	msgPasswordMismatch = "Passwords do not match"
	msgEmailInUse       = "Email already in use"
	msgUsernameTaken    = "Username already taken"
)

var (
	emailPattern   = regexp.MustCompile(`^[\w.\-]+@[\w.\-]+\.\w+$`)
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	specialPattern = regexp.MustCompile(`[\W_]`)
)

// FieldErrors aggregates per-field validation messages for one registration
// attempt. Empty fields are omitted from the JSON body.
type FieldErrors struct {
	FullName        string `json:"fullName,omitempty"`
	Email           string `json:"email,omitempty"`
	Username        string `json:"username,omitempty"`
	Password        string `json:"password,omitempty"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}

// Any reports whether at least one field failed validation.
func (e FieldErrors) Any() bool {
	return e != FieldErrors{}
}

// ValidationError carries the aggregated field errors of a rejected registration.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "registration validation failed"
}

// AuthService handles registration and login business logic.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// RegisterInput represents the required information to create a new account.
type RegisterInput struct {
	FullName        string
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
}

// registrationRules are evaluated in order against the normalized input.
// Every rule runs; a later rule writing to the same field wins.
var registrationRules = []func(in RegisterInput, errs *FieldErrors){
	func(in RegisterInput, errs *FieldErrors) {
		if in.FullName == "" {
			errs.FullName = msgFullNameRequired
		}
	},
	func(in RegisterInput, errs *FieldErrors) {
		if !emailPattern.MatchString(in.Email) {
			errs.Email = msgEmailInvalid
		}
	},
	func(in RegisterInput, errs *FieldErrors) {
		if in.Username == "" {
			errs.Username = msgUsernameRequired
		}
	},
	func(in RegisterInput, errs *FieldErrors) {
		if !validPassword(in.Password) {
			errs.Password = msgPasswordPolicy
		}
	},
	func(in RegisterInput, errs *FieldErrors) {
		if in.Password != in.ConfirmPassword {
			errs.ConfirmPassword = msgPasswordMismatch
		}
	},
}

// validPassword checks length, one uppercase letter, and one special
// character. Underscore counts as special; a digit is not required.
// Length is counted in characters, not bytes.
func validPassword(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength &&
		upperPattern.MatchString(password) &&
		specialPattern.MatchString(password)
}

// Register validates a registration payload and creates the account.
// All field checks run independently; failures are aggregated into a
// ValidationError rather than returned one at a time.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	in := RegisterInput{
		FullName:        strings.TrimSpace(input.FullName),
		Email:           strings.TrimSpace(input.Email),
		Username:        strings.TrimSpace(input.Username),
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	}

	var errs FieldErrors
	for _, rule := range registrationRules {
		rule(in, &errs)
	}

	// Uniqueness checks run after the format rules and overwrite them for the
	// same field. The unique indexes remain the source of truth; this pre-check
	// only produces the friendlier field message.
	if taken, err := s.userRepo.ExistsByEmail(in.Email); err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	} else if taken {
		errs.Email = msgEmailInUse
	}
	if taken, err := s.userRepo.ExistsByUsername(in.Username); err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	} else if taken {
		errs.Username = msgUsernameTaken
	}

	if errs.Any() {
		return nil, &ValidationError{Fields: errs}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		FullName:     in.FullName,
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.duplicateFieldError(in.Email, in.Username, err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// duplicateFieldError re-checks which unique column caused a lost insert race
// so the conflict is reported against the right field.
func (s *AuthService) duplicateFieldError(email, username string, cause error) error {
	var errs FieldErrors
	if taken, err := s.userRepo.ExistsByEmail(email); err == nil && taken {
		errs.Email = msgEmailInUse
	}
	if taken, err := s.userRepo.ExistsByUsername(username); err == nil && taken {
		errs.Username = msgUsernameTaken
	}
	if !errs.Any() {
		return fmt.Errorf("failed to create user: %w", cause)
	}
	return &ValidationError{Fields: errs}
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	UsernameOrEmail string
	Password        string
}

// Login verifies credentials against the stored hash and appends a login
// event on success. A missing account and a wrong password yield the same
// error so callers cannot distinguish the two.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	identifier := strings.TrimSpace(input.UsernameOrEmail)

	user, err := s.userRepo.FindByUsernameOrEmail(identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	event := &models.LoginEvent{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
	}
	if err := s.userRepo.RecordLogin(event); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	return user, nil
}
