// Package account implements signup and login against the user-credential
// store.
package account

import (
	"context"
	"errors"

	"github.com/DHAIRYADHOLU/Metrosync/internal/models"
)

var (
	// ErrNotFound is returned when no account exists for an email.
	ErrNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	// The storage layer's uniqueness constraint is the authority; two
	// concurrent signups for the same email cannot both succeed.
	ErrDuplicateEmail = errors.New("user already exists")
)

// Store is the credential collection. Implementations must enforce email
// uniqueness atomically on insert.
type Store interface {
	FindByEmail(ctx context.Context, email string) (*models.UserAccount, error)
	Insert(ctx context.Context, account models.UserAccount) error
}
