// Package account handles the journal owner's identity and entitlement.
package account

import (
	"context"
	"strings"

	"reflectr/internal/errors"
	"reflectr/internal/models"
	"reflectr/internal/store"
)

// DeriveUserID returns the deterministic id for an email address:
// lowercase, every non-alphanumeric character stripped, prefixed with
// "user_". Two logins with the same email always resolve to the same id,
// so the trade history survives logouts.
func DeriveUserID(email string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(email)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return "user_" + b.String()
}

// Login builds the user record for an email and persists it as the
// current user. The name defaults to the email's local part.
func Login(ctx context.Context, ds store.DataStore, email, name string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.NewValidationError("email", email, "must be a valid email address")
	}
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	user := &models.User{
		ID:    DeriveUserID(email),
		Email: email,
		Name:  name,
		IsPro: false,
	}

	// A returning user keeps their entitlement.
	if existing, err := ds.GetUser(ctx); err == nil && existing != nil && existing.ID == user.ID {
		user.IsPro = existing.IsPro
	}

	if err := ds.SaveUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "saving user")
	}
	return user, nil
}

// Logout removes the current user record. Trades stay in the store and
// reappear on the next login with the same email.
func Logout(ctx context.Context, ds store.DataStore) error {
	return ds.DeleteUser(ctx)
}

// CurrentUser returns the logged-in user or ErrNotLoggedIn.
func CurrentUser(ctx context.Context, ds store.DataStore) (*models.User, error) {
	user, err := ds.GetUser(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "loading user")
	}
	if user == nil {
		return nil, errors.ErrNotLoggedIn
	}
	return user, nil
}

// Upgrade flips the pro entitlement on and persists it exactly once.
// Upgrading an already-pro user is a no-op, never an error, so repeated
// payment-success signals cannot double-apply.
func Upgrade(ctx context.Context, ds store.DataStore, user *models.User) (*models.User, error) {
	if user.IsPro {
		return user, nil
	}

	upgraded := *user
	upgraded.IsPro = true
	if err := ds.SaveUser(ctx, &upgraded); err != nil {
		return nil, errors.Wrap(err, "saving upgraded user")
	}
	return &upgraded, nil
}
