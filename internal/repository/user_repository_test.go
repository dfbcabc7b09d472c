package repository

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/stretchr/testify/assert"

	"github.com/sriluxe/hotel-reservation/internal/model"
)

func TestSeededAccountsAuthenticate(t *testing.T) {
	repo := NewUserRepo(bcrypt.MinCost)
	ctx := context.Background()

	u, err := repo.Authenticate(ctx, "admin@example.com", "password")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, u.Role)

	u, err = repo.Authenticate(ctx, "Clerk@Example.com", "password")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleClerk, u.Role)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	repo := NewUserRepo(bcrypt.MinCost)
	ctx := context.Background()

	_, err := repo.Authenticate(ctx, "guest@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown email fails identically so accounts cannot be probed.
	_, err = repo.Authenticate(ctx, "nobody@example.com", "password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateAssignsUserRole(t *testing.T) {
	repo := NewUserRepo(bcrypt.MinCost)
	ctx := context.Background()

	u, err := repo.Create(ctx, "New Guest", "New.Guest@Example.com", "s3cret")
	assert.NoError(t, err)
	assert.Equal(t, model.RoleUser, u.Role)
	assert.Equal(t, "new.guest@example.com", u.Email)
	assert.NotEmpty(t, u.ID)

	got, err := repo.GetByID(ctx, u.ID)
	assert.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	authed, err := repo.Authenticate(ctx, "new.guest@example.com", "s3cret")
	assert.NoError(t, err)
	assert.Equal(t, u.ID, authed.ID)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	repo := NewUserRepo(bcrypt.MinCost)
	ctx := context.Background()

	_, err := repo.Create(ctx, "Impostor", "guest@example.com", "whatever")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestGetByIDUnknown(t *testing.T) {
	repo := NewUserRepo(bcrypt.MinCost)
	_, err := repo.GetByID(context.Background(), "u404")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
