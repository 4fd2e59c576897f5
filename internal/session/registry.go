package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/fjod/go_marketplace/internal/cart"
	"github.com/fjod/go_marketplace/internal/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// Registry authenticates credentials, mints session tokens, classifies each
// token as user or admin and owns the cart bound to each session.
//
// Sessions never expire and are never revoked; every token lives until the
// process exits, matching the reference system.
type Registry struct {
	mu          sync.RWMutex
	credentials []domain.Credential

	userTokens  map[string]struct{}
	adminTokens map[string]struct{}
	carts       map[string]*cart.Cart
}

// NewRegistry creates a registry over the given credential list. The list is
// scanned in order on every login; with duplicate rows only the first match
// is ever honored.
func NewRegistry(credentials []domain.Credential) *Registry {
	return &Registry{
		credentials: credentials,
		userTokens:  make(map[string]struct{}),
		adminTokens: make(map[string]struct{}),
		carts:       make(map[string]*cart.Cart),
	}
}

// Login validates the email/password pair against the credential list and
// returns a fresh session token on the first match, or an empty string when
// no record matches. Each successful login mints a new token, even for
// repeated logins with the same credentials.
//
// Login does not create the session's cart; that is the caller's job via
// AttachCart once it holds a non-empty token.
func (r *Registry) Login(email, password string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, cred := range r.credentials {
		if cred.Email != email || cred.Password != password {
			continue
		}
		token := uuid.NewString()
		if cred.IsAdmin {
			r.adminTokens[token] = struct{}{}
		} else {
			r.userTokens[token] = struct{}{}
		}
		return token
	}
	return ""
}

// AttachCart binds a fresh, empty cart to the given token and returns it.
// Called once per successful login; a cart left over from an earlier login
// with the same credentials stays orphaned under its own token.
func (r *Registry) AttachCart(token string) *cart.Cart {
	c := cart.New()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[token] = c
	return c
}

// IsUser reports whether token belongs to the user role set.
func (r *Registry) IsUser(token string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.userTokens[token]
	return ok
}

// IsAdmin reports whether token belongs to the admin role set.
func (r *Registry) IsAdmin(token string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.adminTokens[token]
	return ok
}

// CartFor returns the cart bound to a live session.
func (r *Registry) CartFor(token string) (*cart.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.carts[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return c, nil
}
