package services

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/Shubha258/Task-Manager/internal/constants"
	"github.com/Shubha258/Task-Manager/internal/models"
	"github.com/Shubha258/Task-Manager/internal/repository"
	"github.com/Shubha258/Task-Manager/internal/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrEmailNotRegistered = errors.New("email is not registered")
	ErrWrongPassword      = errors.New("password does not match")
	ErrMissingFields      = errors.New("all fields are required")
	ErrNonStringField     = errors.New("fields must be strings")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// No whitespace around the @, a dot somewhere after it.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService handles signup, login and profile lookups.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *token.Service) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// SignupInput carries the raw signup fields. The fields are untyped so the
// string-type validation step can tell a wrongly typed value apart from a
// missing one.
type SignupInput struct {
	Name     any
	Email    any
	Password any
}

// Signup validates the input and creates a user with a hashed password.
// Validation short-circuits at the first failure, in a fixed order.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	if isMissing(input.Name) || isMissing(input.Email) || isMissing(input.Password) {
		return nil, ErrMissingFields
	}

	name, nameOK := input.Name.(string)
	email, emailOK := input.Email.(string)
	password, passwordOK := input.Password.(string)
	if !nameOK || !emailOK || !passwordOK {
		return nil, ErrNonStringField
	}

	if len(password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	// Existence check produces the "already registered" error; the unique
	// index on users.email closes the race between two concurrent signups.
	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the user together with a signed
// access token.
func (s *AuthService) Login(input LoginInput) (*models.User, string, error) {
	if input.Email == "" || input.Password == "" {
		return nil, "", ErrMissingCredentials
	}

	user, err := s.userRepo.FindByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrEmailNotRegistered
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, "", ErrWrongPassword
	}

	accessToken, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return user, accessToken, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

func isMissing(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
