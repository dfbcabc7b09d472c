package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sriluxe/hotel-reservation/internal/model"
	"github.com/sriluxe/hotel-reservation/internal/utils"
)

// userRecord pairs the public identity record with its credential
// hash.  The hash never leaves the repository.
type userRecord struct {
	model.User
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRepo holds identity records in memory, keyed by normalized
// email.  It is seeded with the three demo accounts the portal ships
// with so that role-gated flows work out of the box.
type UserRepo struct {
	mu      sync.RWMutex
	byEmail map[string]*userRecord
	byID    map[string]*userRecord
	cost    int
}

// NewUserRepo builds a user store with the given bcrypt cost and seeds
// the demo accounts (password "password").  Seeding failures are
// programming errors (an invalid cost), so they panic.
func NewUserRepo(bcryptCost int) *UserRepo {
	r := &UserRepo{
		byEmail: make(map[string]*userRecord),
		byID:    make(map[string]*userRecord),
		cost:    bcryptCost,
	}
	seed := []struct {
		id, name, email string
		role            model.Role
	}{
		{"u1", "Hotel Admin", "admin@example.com", model.RoleAdmin},
		{"u2", "Front Desk Clerk", "clerk@example.com", model.RoleClerk},
		{"u3", "Guest User", "guest@example.com", model.RoleUser},
	}
	for _, s := range seed {
		if _, err := r.insert(s.id, s.name, s.email, "password", s.role); err != nil {
			panic("seed user store: " + err.Error())
		}
	}
	return r
}

// insert hashes the password and stores the record.  Caller must hold
// no lock; insert takes it.
func (r *UserRepo) insert(id, name, email, password string, role model.Role) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, r.cost)
	if err != nil {
		return model.User{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[email]; ok {
		return model.User{}, ErrEmailExists
	}
	now := time.Now().UTC()
	rec := &userRecord{
		User:         model.User{ID: id, Name: name, Email: email, Role: role},
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.byEmail[email] = rec
	r.byID[id] = rec
	return rec.User, nil
}

// Create registers a new account with role "user" and a generated ID.
// A duplicate email yields ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, name, email, password string) (model.User, error) {
	id, err := utils.NewID("u")
	if err != nil {
		return model.User{}, err
	}
	return r.insert(id, strings.TrimSpace(name), email, password, model.RoleUser)
}

// Authenticate verifies credentials and returns the matching identity
// record.  Unknown emails and wrong passwords both yield
// ErrInvalidCredentials so callers cannot probe for accounts.
func (r *UserRepo) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	r.mu.RLock()
	rec, ok := r.byEmail[email]
	r.mu.RUnlock()
	if !ok || !utils.VerifyPassword(rec.PasswordHash, password) {
		return model.User{}, ErrInvalidCredentials
	}
	return rec.User, nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return rec.User, nil
}
