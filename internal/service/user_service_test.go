package service

import (
	"testing"

	"go-inventory-billing/internal/model"
	"go-inventory-billing/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUserService(db *gorm.DB) UserService {
	return NewUserService(repository.NewUserRepo(db))
}

func TestUpdateUserPartialPatch(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	acme := seedCompany(t, db, "Acme")
	user := seedUser(t, db, acme.ID, "alice")

	email := "fresh@example.com"
	updated, err := svc.UpdateUser(acme.ID, user.ID, &UpdateUserRequest{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "fresh@example.com", updated.Email)
	assert.Equal(t, "alice", updated.Username)
	assert.True(t, updated.IsActive)
}

func TestUpdateUserPasswordIsRehashed(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	acme := seedCompany(t, db, "Acme")
	user := seedUser(t, db, acme.ID, "alice")

	password := "brand-new-pass"
	_, err := svc.UpdateUser(acme.ID, user.ID, &UpdateUserRequest{Password: &password})
	require.NoError(t, err)

	var stored model.User
	require.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.NotEqual(t, password, stored.Password)
	assert.True(t, stored.CheckPassword(password))
	assert.False(t, stored.CheckPassword("secret123"))
}

func TestUpdateUserDeactivate(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	acme := seedCompany(t, db, "Acme")
	user := seedUser(t, db, acme.ID, "alice")

	inactive := false
	updated, err := svc.UpdateUser(acme.ID, user.ID, &UpdateUserRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestUserServiceForeignTenant(t *testing.T) {
	db := newTestDB(t)
	svc := newUserService(db)

	acme := seedCompany(t, db, "Acme")
	rival := seedCompany(t, db, "Rival")
	user := seedUser(t, db, acme.ID, "alice")

	_, err := svc.GetUser(rival.ID, user.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.DeleteUser(rival.ID, user.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
