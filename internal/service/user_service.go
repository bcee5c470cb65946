package service

import (
	"context"
	"strings"

	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// RegisterInput carries the fields needed to register an account.
type RegisterInput struct {
	Name     string
	Email    string
	Handle   string
	Password string
}

// UpdateProfileInput replaces name and bio wholesale. The avatar is managed
// by its own endpoint and is never touched here.
type UpdateProfileInput struct {
	UserID uint
	Name   string
	Bio    string
}

// UserService handles account and profile business logic.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetProfile(ctx context.Context, handle string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*models.User, error)
	SetAvatar(ctx context.Context, userID uint, avatar string) (*models.User, error)
	SearchUsers(ctx context.Context, query string, limit int) ([]*models.User, error)
}

type userService struct {
	users repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Register validates the input, hashes the password and creates the account.
// Duplicate email or handle surfaces as a conflict from the repository.
func (s *userService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	handle := strings.TrimSpace(input.Handle)

	if err := validation.ValidateName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateHandle(handle); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(input.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Handle:   handle,
		Password: string(hash),
		Avatar:   models.DefaultAvatar,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials. Unknown email and wrong password return
// the same error so the response does not leak which one failed.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}
	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) GetProfile(ctx context.Context, handle string) (*models.Profile, error) {
	return s.users.GetProfileByHandle(ctx, handle)
}

// UpdateProfile overwrites name and bio with the supplied values. An omitted
// bio is cleared rather than preserved; the avatar is left alone.
func (s *userService) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*models.User, error) {
	name := strings.TrimSpace(input.Name)
	if err := validation.ValidateName(name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateBio(input.Bio); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.Bio = input.Bio
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetAvatar updates only the avatar URL.
func (s *userService) SetAvatar(ctx context.Context, userID uint, avatar string) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Avatar = avatar
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SearchUsers matches handles and display names.
func (s *userService) SearchUsers(ctx context.Context, query string, limit int) ([]*models.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	return s.users.Search(ctx, query, limit)
}
