package service

import (
	"testing"

	"go-inventory-billing/internal/repository"
	"go-inventory-billing/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) AuthService {
	return NewAuthService(repository.NewUserRepo(db), repository.NewCompanyRepo(db))
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	acme := seedCompany(t, db, "Acme")

	user, err := svc.Register(&RegisterRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "secret123",
		CompanyID: acme.ID.String(),
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, acme.ID, user.CompanyID)
	assert.True(t, user.IsActive)
}

func TestRegisterUnknownCompany(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&RegisterRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "secret123",
		CompanyID: uuid.NewString(),
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	acme := seedCompany(t, db, "Acme")
	seedUser(t, db, acme.ID, "alice")

	_, err := svc.Register(&RegisterRequest{
		Username:  "someone",
		Email:     "alice@example.com",
		Password:  "secret123",
		CompanyID: acme.ID.String(),
	})
	assert.ErrorIs(t, err, ErrEmailExists)

	_, err = svc.Register(&RegisterRequest{
		Username:  "alice",
		Email:     "fresh@example.com",
		Password:  "secret123",
		CompanyID: acme.ID.String(),
	})
	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	acme := seedCompany(t, db, "Acme")

	_, err := svc.Register(&RegisterRequest{
		Username:  "al",
		Email:     "alice@example.com",
		Password:  "secret123",
		CompanyID: acme.ID.String(),
	})
	assert.Error(t, err)

	_, err = svc.Register(&RegisterRequest{
		Username:  "alice",
		Email:     "not-an-email",
		Password:  "secret123",
		CompanyID: acme.ID.String(),
	})
	assert.Error(t, err)

	_, err = svc.Register(&RegisterRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "short",
		CompanyID: acme.ID.String(),
	})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	acme := seedCompany(t, db, "Acme")
	user := seedUser(t, db, acme.ID, "alice")

	resp, err := svc.Login("alice", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)

	// The token carries the identity and its tenant.
	claims, err := jwt.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, acme.ID, claims.CompanyID)
	assert.Equal(t, "alice", claims.Username)
}

func TestLoginBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	acme := seedCompany(t, db, "Acme")
	seedUser(t, db, acme.ID, "alice")

	_, err := svc.Login("alice", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown usernames answer identically to wrong passwords.
	_, err = svc.Login("nobody", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
