package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/college/academics/internal/app/models"
	"github.com/college/academics/internal/app/models/dto"
	"github.com/college/academics/internal/pkg/apperrors"
)

func TestCreateUserHashesPassword(t *testing.T) {
	db := newMemDB()
	svc := newTestServices(db).UserService
	ctx := context.Background()

	id, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
		Name: "Asha Raman", Email: "  Asha@College.EDU ", Password: "s3cretpass", Role: "STAFF",
	})
	require.NoError(t, err)

	user, err := svc.GetUserByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "asha@college.edu", user.Email)
	assert.Equal(t, models.RoleStaff, user.Role)
	assert.NotEqual(t, "s3cretpass", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cretpass")))

	_, err = svc.CreateUser(ctx, &dto.CreateUserRequest{
		Name: "Other", Email: "ASHA@college.edu", Password: "anotherpass", Role: "ADMIN",
	})
	require.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, emailExistsMsg, err.Error())
}

func TestCreateUserValidation(t *testing.T) {
	svc := newTestServices(newMemDB()).UserService

	_, err := svc.CreateUser(context.Background(), &dto.CreateUserRequest{
		Name: "Short", Email: "not-an-email", Password: "short", Role: "DEAN",
	})
	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.ElementsMatch(t, []string{"email", "password", "role"}, apperrors.Fields(err))
}

func TestGetUsersFiltersByRole(t *testing.T) {
	db := newMemDB()
	svc := newTestServices(db).UserService
	ctx := context.Background()
	db.addUser("admin@college.edu", models.RoleAdmin)
	db.addUser("staff1@college.edu", models.RoleStaff)
	db.addUser("staff2@college.edu", models.RoleStaff)

	all, err := svc.GetUsers(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	staff, err := svc.GetUsers(ctx, "staff")
	require.NoError(t, err)
	assert.Len(t, staff, 2)

	_, err = svc.GetUsers(ctx, "dean")
	require.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUpdateUser(t *testing.T) {
	db := newMemDB()
	svc := newTestServices(db).UserService
	ctx := context.Background()
	id, err := svc.CreateUser(ctx, &dto.CreateUserRequest{
		Name: "Asha", Email: "asha@college.edu", Password: "s3cretpass", Role: "STAFF",
	})
	require.NoError(t, err)
	db.addUser("ravi@college.edu", models.RoleStaff)
	originalHash := db.users[id].PasswordHash

	req := &dto.UpdateUserRequest{Name: "Asha R", Email: "asha@college.edu", Role: "ADMIN", IsActive: "YES"}
	updated, err := svc.UpdateUser(ctx, id, req)
	require.NoError(t, err)
	assert.Equal(t, "Asha R", updated.Name)
	assert.Equal(t, models.RoleAdmin, updated.Role)
	assert.Equal(t, originalHash, db.users[id].PasswordHash, "empty password keeps the hash")

	req.Password = "n3wsecret"
	_, err = svc.UpdateUser(ctx, id, req)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(db.users[id].PasswordHash), []byte("n3wsecret")))

	req.Email = "RAVI@college.edu"
	_, err = svc.UpdateUser(ctx, id, req)
	require.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = svc.UpdateUser(ctx, 999, &dto.UpdateUserRequest{Name: "X", Email: "x@college.edu", Role: "STAFF", IsActive: "YES"})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteUser(t *testing.T) {
	db := newMemDB()
	svc := newTestServices(db).UserService
	id := db.addUser("staff@college.edu", models.RoleStaff)

	require.NoError(t, svc.DeleteUser(context.Background(), id, "registrar"))
	assert.Equal(t, models.ActiveNo, db.users[id].IsActive)
	assert.Equal(t, "registrar", *db.users[id].UpdatedBy)

	require.ErrorIs(t, svc.DeleteUser(context.Background(), id+1, ""), apperrors.ErrNotFound)
}
