// Package session tracks who is using the app and in which role. The
// credential check is a hardcoded role selector carried over from the
// original behavior; it is a stand-in, not an authentication system.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"canteen-system/internal/domain"
	"canteen-system/internal/storage"
)

type SessionServiceInterface interface {
	Login(ctx context.Context, username, password string, role domain.Role) (domain.User, error)
	Current(ctx context.Context) (domain.User, bool, error)
	Logout(ctx context.Context) error
}

// SessionService keeps the session marker in a non-durable store so it is
// discarded when the process ends, like the original sessionStorage.
type SessionService struct {
	store storage.Store
}

var _ SessionServiceInterface = (*SessionService)(nil)

func NewSessionService(store storage.Store) *SessionService {
	return &SessionService{store: store}
}

// Login accepts the fixed role/credential pairs (owner: admin/123,
// customer: user/123) and records the session marker. Anything else fails
// with a validation error and changes nothing.
func (ss *SessionService) Login(ctx context.Context, username, password string, role domain.Role) (domain.User, error) {
	ok := (role == domain.RoleOwner && username == "admin" && password == "123") ||
		(role == domain.RoleCustomer && username == "user" && password == "123")
	if !ok {
		return domain.User{}, fmt.Errorf("invalid credentials: %w", domain.ErrValidation)
	}

	user := domain.User{Name: username, Role: role}
	b, err := json.Marshal(user)
	if err != nil {
		return domain.User{}, fmt.Errorf("encode session: %w", err)
	}
	if err := ss.store.Set(ctx, storage.KeySession, b); err != nil {
		return domain.User{}, fmt.Errorf("save session: %w: %w", domain.ErrPersistence, err)
	}
	return user, nil
}

// Current returns the logged-in user, if any. A storage read failure is
// reported rather than mistaken for "not logged in", keeping the
// persistence error policy uniform should the marker ever move to a
// durable store.
func (ss *SessionService) Current(ctx context.Context) (domain.User, bool, error) {
	b, found, err := ss.store.Get(ctx, storage.KeySession)
	if err != nil {
		return domain.User{}, false, fmt.Errorf("read session: %w: %w", domain.ErrPersistence, err)
	}
	if !found {
		return domain.User{}, false, nil
	}
	var user domain.User
	if err := json.Unmarshal(b, &user); err != nil {
		return domain.User{}, false, fmt.Errorf("decode session: %w: %w", domain.ErrPersistence, err)
	}
	return user, true, nil
}

// Logout clears the session marker.
func (ss *SessionService) Logout(ctx context.Context) error {
	if err := ss.store.Delete(ctx, storage.KeySession); err != nil {
		return fmt.Errorf("clear session: %w: %w", domain.ErrPersistence, err)
	}
	return nil
}
