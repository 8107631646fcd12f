package services

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/pkg/apperrors"
	"github.com/college/academics/internal/pkg/validation"
)

// UserStore is the Users persistence the service needs
type UserStore interface {
	userLookup
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, role models.RoleType) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	SoftDelete(ctx context.Context, id int64, updatedBy string) error
}

// UserService defines the interface for user-related operations
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (int64, error)
	GetUsers(ctx context.Context, role string) ([]*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id int64, updatedBy string) error
}

type userServiceImpl struct {
	users UserStore
}

// NewUserService creates a new user service instance
func NewUserService(users UserStore) UserService {
	return &userServiceImpl{users: users}
}

const emailExistsMsg = "Email already in use"

// HashPassword hashes a plain-text password with bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CreateUser creates an ADMIN or STAFF account
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (int64, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validation.Validate(req); err != nil {
		return 0, err
	}

	found, err := s.users.EmailExists(ctx, req.Email)
	if err := conflictIf(found, err, emailExistsMsg); err != nil {
		return 0, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return 0, apperrors.NewDatabaseError(err)
	}

	by := actor(req.CreatedBy)
	id, err := s.users.Create(ctx, &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleType(req.Role),
		IsActive:     models.ActiveYes,
		Audit:        models.Audit{CreatedBy: by, UpdatedBy: by},
	})
	if err != nil {
		return 0, writeError(err, "User", emailExistsMsg)
	}
	return id, nil
}

// GetUsers lists users, optionally of a single role
func (s *userServiceImpl) GetUsers(ctx context.Context, role string) ([]*models.User, error) {
	role = strings.ToUpper(strings.TrimSpace(role))
	if role != "" && role != string(models.RoleAdmin) && role != string(models.RoleStaff) {
		return nil, apperrors.NewValidationError("role must be one of: ADMIN STAFF", "role")
	}
	users, err := s.users.List(ctx, models.RoleType(role))
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return users, nil
}

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if err := requireID("userId", id); err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "User with ID %d not found", id)
	}
	return user, nil
}

// UpdateUser rewrites a user. An empty password keeps the current hash.
func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	if err := requireID("userId", id); err != nil {
		return nil, err
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validation.Validate(req); err != nil {
		return nil, err
	}

	current, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "User with ID %d not found", id)
	}

	if req.Email != current.Email {
		other, err := s.users.GetByEmail(ctx, req.Email)
		switch {
		case err == nil && other.UserID != id:
			return nil, apperrors.NewConflictError(emailExistsMsg)
		case err != nil && !isNotFound(err):
			return nil, apperrors.NewDatabaseError(err)
		}
	}

	hash := current.PasswordHash
	if req.Password != "" {
		if hash, err = HashPassword(req.Password); err != nil {
			return nil, apperrors.NewDatabaseError(err)
		}
	}

	updated, err := s.users.Update(ctx, &models.User{
		UserID:       id,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleType(req.Role),
		IsActive:     models.ActiveFlag(req.IsActive),
		Audit:        models.Audit{UpdatedBy: actor(req.UpdatedBy)},
	})
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NewNotFoundErrorf("User with ID %d not found", id)
		}
		return nil, writeError(err, "User", emailExistsMsg)
	}
	return updated, nil
}

// DeleteUser deactivates a user
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64, updatedBy string) error {
	if err := requireID("userId", id); err != nil {
		return err
	}
	if err := s.users.SoftDelete(ctx, id, *actor(updatedBy)); err != nil {
		return lookupError(err, "User with ID %d not found", id)
	}
	return nil
}
