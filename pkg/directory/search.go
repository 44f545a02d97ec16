package directory

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// SearchOptions bounds a paginated user scan
type SearchOptions struct {
	PageSize int
	MaxPages int
}

// DefaultSearchOptions scans up to 10 pages of 1000 users
var DefaultSearchOptions = SearchOptions{PageSize: 1000, MaxPages: 10}

// FindUserByEmail scans pages in order for a user whose email matches,
// ignoring case. The scan ends at the first match, a page shorter than
// PageSize, or after MaxPages pages. Found is false when nothing matched.
func FindUserByEmail(ctx context.Context, lister UserLister, email string, opts SearchOptions) (user User, found bool, err error) {
	if opts.PageSize <= 0 || opts.MaxPages <= 0 {
		opts = DefaultSearchOptions
	}

	for page := 1; page <= opts.MaxPages; page++ {
		users, err := lister.ListUsers(ctx, page, opts.PageSize)
		if err != nil {
			return User{}, false, fmt.Errorf("failed to list users page %d: %w", page, err)
		}

		for _, u := range users {
			if strings.EqualFold(u.Email, email) {
				slog.Debug("Found user by email", "user_id", u.ID, "page", page)
				return u, true, nil
			}
		}

		if len(users) < opts.PageSize {
			return User{}, false, nil
		}
	}

	slog.Warn("User search hit page limit", "max_pages", opts.MaxPages, "page_size", opts.PageSize)
	return User{}, false, nil
}
