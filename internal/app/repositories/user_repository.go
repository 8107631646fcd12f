package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/pkg/logger"
)

var userColumns = columns("userId", "name", "email", "passwordHash", "role", "isActive")

// UserRepository handles Users database operations
type UserRepository struct {
	baseRepository
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{baseRepository: newBaseRepository(db)}
}

// Create inserts a user and returns its id
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	id, err := r.insertReturningID(ctx, r.db, r.sb.Insert("Users").
		Columns("name", "email", "passwordHash", "role", "isActive", "createdBy", "updatedBy").
		Values(user.Name, user.Email, user.PasswordHash, string(user.Role), string(user.IsActive), user.CreatedBy, user.UpdatedBy),
		"userId")
	if err != nil {
		logger.Error().Err(err).Str("email", user.Email).Msg("Error creating user")
		return 0, fmt.Errorf("error creating user: %w", err)
	}
	return id, nil
}

// GetByID retrieves a user by id
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return collectOne[models.User](ctx, r.db, r.sb.Select(userColumns...).
		From("Users").
		Where(squirrel.Eq{"userId": id}))
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return collectOne[models.User](ctx, r.db, r.sb.Select(userColumns...).
		From("Users").
		Where(squirrel.Eq{"email": email}))
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "Users", squirrel.Eq{"email": email})
}

// List retrieves users, optionally restricted to one role
func (r *UserRepository) List(ctx context.Context, role models.RoleType) ([]*models.User, error) {
	query := r.sb.Select(userColumns...).From("Users").OrderBy("userId")
	if role != "" {
		query = query.Where(squirrel.Eq{"role": string(role)})
	}

	users, err := collectRows[models.User](ctx, r.db, query)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying users")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	return users, nil
}

// Update rewrites a user and returns the stored row
func (r *UserRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	updated, err := updateReturning[models.User](ctx, r.db, r.sb.Update("Users").
		SetMap(map[string]interface{}{
			"name":         user.Name,
			"email":        user.Email,
			"passwordHash": user.PasswordHash,
			"role":         string(user.Role),
			"isActive":     string(user.IsActive),
			"updatedBy":    user.UpdatedBy,
		}).
		Where(squirrel.Eq{"userId": user.UserID}), userColumns)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("userID", user.UserID).Msg("Error updating user")
		return nil, fmt.Errorf("error updating user: %w", err)
	}
	return updated, nil
}

// SoftDelete deactivates a user
func (r *UserRepository) SoftDelete(ctx context.Context, id int64, updatedBy string) error {
	return r.softDelete(ctx, "Users", squirrel.Eq{"userId": id}, updatedBy)
}
