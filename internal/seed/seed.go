package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/app/services"
	"github.com/college/academics/internal/pkg/apperrors"
)

// Admin describes the account created on first start.
type Admin struct {
	Name     string
	Email    string
	Password string
}

// CreateDefaultAdmin creates the admin account when none with that email
// exists. An empty email disables seeding.
func CreateDefaultAdmin(ctx context.Context, users services.UserService, admin Admin, lgr zerolog.Logger) error {
	if admin.Email == "" {
		lgr.Debug().Msg("No seed admin configured, skipping")
		return nil
	}

	lgr.Info().Str("email", admin.Email).Msg("Checking/Creating default admin user...")
	id, err := users.CreateUser(ctx, &dto.CreateUserRequest{
		Name:     admin.Name,
		Email:    admin.Email,
		Password: admin.Password,
		Role:     string(models.RoleAdmin),
	})
	switch {
	case errors.Is(err, apperrors.ErrConflict):
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	case err != nil:
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Info().Int64("adminID", id).Msg("Default admin user created successfully")
	return nil
}
