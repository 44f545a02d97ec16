package directory

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CreateHook runs after an identity is created, inside the create call.
// A failing hook rolls the identity back.
type CreateHook func(ctx context.Context, u User) error

// InMemoryDirectory implements Directory using in-memory storage
type InMemoryDirectory struct {
	mu        sync.RWMutex
	users     []User               // creation order, for stable pages
	passwords map[uuid.UUID]string // userID -> password
	tokens    map[string]uuid.UUID // access token -> userID
	hooks     []CreateHook
}

// NewInMemoryDirectory creates a new in-memory directory
func NewInMemoryDirectory(hooks ...CreateHook) *InMemoryDirectory {
	return &InMemoryDirectory{
		passwords: make(map[uuid.UUID]string),
		tokens:    make(map[string]uuid.UUID),
		hooks:     hooks,
	}
}

// CreateUser implements Directory.CreateUser
func (d *InMemoryDirectory) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	if params.Email == "" {
		return User{}, &APIError{Status: http.StatusBadRequest, Message: "Unable to validate email address: invalid format"}
	}
	if len(params.Password) < 6 {
		return User{}, &APIError{Status: http.StatusUnprocessableEntity, Message: "Password should be at least 6 characters."}
	}

	d.mu.Lock()
	for _, u := range d.users {
		if strings.EqualFold(u.Email, params.Email) {
			d.mu.Unlock()
			return User{}, &APIError{Status: http.StatusUnprocessableEntity, Message: "A user with this email address has already been registered"}
		}
	}

	now := time.Now().UTC()
	u := User{
		ID:           uuid.New(),
		Email:        strings.ToLower(params.Email),
		UserMetadata: params.UserMetadata,
		CreatedAt:    now,
	}
	if params.EmailConfirm {
		u.EmailConfirmedAt = &now
	}
	d.users = append(d.users, u)
	d.passwords[u.ID] = params.Password
	hooks := d.hooks
	d.mu.Unlock()

	for _, hook := range hooks {
		if err := hook(ctx, u); err != nil {
			d.DeleteUser(u.ID)
			return User{}, &APIError{Status: http.StatusInternalServerError, Message: "Database error creating new user"}
		}
	}
	return u, nil
}

// UpdateUserPassword implements Directory.UpdateUserPassword
func (d *InMemoryDirectory) UpdateUserPassword(ctx context.Context, userID uuid.UUID, password string) (User, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, u := range d.users {
		if u.ID == userID {
			d.passwords[userID] = password
			return u, nil
		}
	}
	return User{}, &APIError{Status: http.StatusNotFound, Message: "User not found"}
}

// GetUserByToken implements Directory.GetUserByToken
func (d *InMemoryDirectory) GetUserByToken(ctx context.Context, token string) (User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	userID, ok := d.tokens[token]
	if !ok {
		return User{}, ErrInvalidToken
	}
	for _, u := range d.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return User{}, ErrInvalidToken
}

// ListUsers implements UserLister.ListUsers
func (d *InMemoryDirectory) ListUsers(ctx context.Context, page, perPage int) ([]User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if page < 1 {
		page = 1
	}
	start := (page - 1) * perPage
	if start >= len(d.users) {
		return []User{}, nil
	}
	end := start + perPage
	if end > len(d.users) {
		end = len(d.users)
	}
	result := make([]User, end-start)
	copy(result, d.users[start:end])
	return result, nil
}

// IssueToken returns a new access token for userID
func (d *InMemoryDirectory) IssueToken(userID uuid.UUID) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	token := uuid.NewString()
	d.tokens[token] = userID
	return token
}

// DeleteUser removes an identity and its tokens, leaving any profile that
// links to it orphaned
func (d *InMemoryDirectory) DeleteUser(userID uuid.UUID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, u := range d.users {
		if u.ID == userID {
			d.users = append(d.users[:i], d.users[i+1:]...)
			break
		}
	}
	delete(d.passwords, userID)
	for token, id := range d.tokens {
		if id == userID {
			delete(d.tokens, token)
		}
	}
}

// Password returns the current password of userID (for tests)
func (d *InMemoryDirectory) Password(userID uuid.UUID) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	p, ok := d.passwords[userID]
	return p, ok
}

// Count returns the number of identities
func (d *InMemoryDirectory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}
