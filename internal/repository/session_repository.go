package repository

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sriluxe/hotel-reservation/internal/model"
)

// sessionStore is the slice of the redis client the session slot
// needs.  *redis.Client satisfies it; tests substitute a fake to
// exercise the corrupt-slot path without a server.
type sessionStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// SessionRepo is the durable session slot: one named redis key holding
// the serialized identity of the signed-in portal user.  The contract
// is last-writer-wins — Save overwrites unconditionally, Clear removes
// the key, and Load reads whatever the last writer left.  A malformed
// value is deleted and treated as "no session" so a corrupt slot can
// never wedge the sign-in flow.
//
// When no redis client could be constructed the repo degrades to an
// always-empty slot: Save and Clear succeed as no-ops and Load reports
// no session.
type SessionRepo struct {
	rdb   sessionStore
	key   string
	ready atomic.Bool
}

// NewSessionRepo binds the slot to the configured key.  rdb may be nil.
func NewSessionRepo(rdb *redis.Client, key string) *SessionRepo {
	r := &SessionRepo{key: key}
	// Keep the interface nil when no client exists so the nil checks
	// below hold (a nil *redis.Client in a non-nil interface would not).
	if rdb != nil {
		r.rdb = rdb
	}
	return r
}

// Ready reports whether the startup Restore has completed.  The route
// guard withholds authorization decisions until this flips to true so
// a slow restore cannot cause a spurious denial right after boot.
func (r *SessionRepo) Ready() bool {
	return r.ready.Load()
}

// Restore performs the one startup read of the slot and marks the repo
// ready regardless of outcome.  It returns the restored user and
// whether one was present.
func (r *SessionRepo) Restore(ctx context.Context) (model.User, bool, error) {
	defer r.ready.Store(true)
	return r.Load(ctx)
}

// Load reads the slot.  A missing key means no session.  A value that
// fails to decode is removed before reporting no session.
func (r *SessionRepo) Load(ctx context.Context) (model.User, bool, error) {
	if r.rdb == nil {
		return model.User{}, false, nil
	}
	raw, err := r.rdb.Get(ctx, r.key).Bytes()
	if err == redis.Nil {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, err
	}
	u, err := decodeSession(raw)
	if err != nil {
		// Corrupt slot: drop it so the next read starts clean.
		_ = r.rdb.Del(ctx, r.key).Err()
		return model.User{}, false, nil
	}
	return u, true, nil
}

// Save serializes the user into the slot, replacing any previous
// occupant.  The slot has no TTL; it survives until logout overwrites
// or clears it.
func (r *SessionRepo) Save(ctx context.Context, u model.User) error {
	if r.rdb == nil {
		return nil
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, r.key, raw, 0).Err()
}

// Clear empties the slot.
func (r *SessionRepo) Clear(ctx context.Context) error {
	if r.rdb == nil {
		return nil
	}
	return r.rdb.Del(ctx, r.key).Err()
}

// decodeSession unmarshals a slot value and validates that it still
// fits the identity shape: an ID, an email and a known role.  Values
// written by older builds with since-renamed roles fail here and get
// discarded by Load.
func decodeSession(raw []byte) (model.User, error) {
	var u model.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return model.User{}, err
	}
	role, ok := model.NormalizeRole(string(u.Role))
	if !ok || u.ID == "" || u.Email == "" {
		return model.User{}, ErrInvalidCredentials
	}
	u.Role = role
	return u, nil
}
