package directory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrUserNotFound = errors.New("user not found")
)

// MetadataFullName is the user_metadata key holding the display name
const MetadataFullName = "full_name"

// User is an identity as seen through the admin API
type User struct {
	ID               uuid.UUID              `json:"id"`
	Email            string                 `json:"email"`
	EmailConfirmedAt *time.Time             `json:"email_confirmed_at,omitempty"`
	UserMetadata     map[string]interface{} `json:"user_metadata,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
}

// FullName returns the display name stored in the user's metadata
func (u User) FullName() string {
	name, _ := u.UserMetadata[MetadataFullName].(string)
	return name
}

type CreateUserParams struct {
	Email        string                 `json:"email"`
	Password     string                 `json:"password"`
	EmailConfirm bool                   `json:"email_confirm"`
	UserMetadata map[string]interface{} `json:"user_metadata,omitempty"`
}

// UserLister lists identities one page at a time. Pages start at 1.
type UserLister interface {
	ListUsers(ctx context.Context, page, perPage int) ([]User, error)
}

// Directory is the subset of the identity service used by the portal
type Directory interface {
	UserLister
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	UpdateUserPassword(ctx context.Context, userID uuid.UUID, password string) (User, error)
	GetUserByToken(ctx context.Context, token string) (User, error)
}

// APIError is an error reported by the identity service. Message is the
// service's own text and is safe to show to the caller.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("identity service error (%d): %s", e.Status, e.Message)
}

// Is reports a 404 from the identity service as ErrUserNotFound
func (e *APIError) Is(target error) bool {
	return target == ErrUserNotFound && e.Status == http.StatusNotFound
}

// ErrorMessage returns the identity service's message for err when there is
// one, otherwise err's text
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
