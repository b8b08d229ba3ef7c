package account

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/DHAIRYADHOLU/Metrosync/internal/models"
)

// bcryptCost matches the work factor the credential store has always used.
const bcryptCost = 10

var (
	// ErrInvalidCredentials is the single failure for authentication.
	// Unknown email and wrong password are deliberately indistinguishable
	// so responses cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidInput marks signup fields that fail validation.
	ErrInvalidInput = errors.New("invalid signup input")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service implements account creation and authentication on top of a
// credential store.
type Service struct {
	store Store
	cost  int
}

// NewService creates an account service.
func NewService(store Store) *Service {
	return &Service{store: store, cost: bcryptCost}
}

// CreateAccount validates the fields, hashes the password with a per-call
// salt and stores the account. A duplicate email yields ErrDuplicateEmail
// and leaves the existing record untouched.
func (s *Service) CreateAccount(ctx context.Context, email, password string) error {
	if err := validateSignup(email, password); err != nil {
		return err
	}

	// Fast path; the store's unique index still decides under races.
	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return ErrDuplicateEmail
	} else if !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.store.Insert(ctx, models.UserAccount{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
}

// Authenticate checks the supplied password against the stored hash and
// returns the account with a fresh session token. Both failure causes
// return the same error.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.UserAccount, string, error) {
	acct, err := s.store.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	return acct, uuid.NewString(), nil
}

// validateSignup applies the signup form rules: a plausible email and a
// password of at least 8 characters mixing upper, lower, digit and special
// characters.
func validateSignup(email, password string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			special = true
		}
	}
	if !upper || !lower || !digit || !special {
		return fmt.Errorf("%w: password must include uppercase, lowercase, a number, and a special character", ErrInvalidInput)
	}
	return nil
}
