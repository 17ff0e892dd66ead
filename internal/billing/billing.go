// Package billing simulates the redirect-based checkout flow that grants
// the pro entitlement. No real payment processing happens here: the flow
// produces a return URL carrying a success signal, and the caller applies
// the upgrade when the signal is present.
package billing

import (
	"context"
	"net/url"

	"github.com/rs/zerolog"

	"reflectr/internal/account"
	"reflectr/internal/logging"
	"reflectr/internal/models"
	"reflectr/internal/store"
)

// successParam is the query parameter carried back from checkout.
const successParam = "payment_success"

// checkoutBase stands in for a hosted payment link. A real deployment
// would point at the provider's checkout session URL.
const checkoutBase = "https://reflectr.app/checkout"

// StartCheckout returns the URL the user is sent to. The simulated
// provider redirects straight back with the success flag set.
func StartCheckout(user *models.User) (string, error) {
	u, err := url.Parse(checkoutBase)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("prefilled_email", user.Email)
	q.Set(successParam, "true")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// PaymentSucceeded reports whether a return URL carries the success signal.
func PaymentSucceeded(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Query().Get(successParam) == "true"
}

// ClearPaymentParams strips the success signal from a return URL so the
// signal is processed at most once per redirect.
func ClearPaymentParams(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	q.Del(successParam)
	u.RawQuery = q.Encode()
	return u.String()
}

// CompleteCheckout applies the entitlement for a successful return.
// Idempotent: a user who is already pro is returned unchanged, so a
// replayed success signal never double-applies.
func CompleteCheckout(ctx context.Context, ds store.DataStore, logger zerolog.Logger, user *models.User, returnURL string) (*models.User, error) {
	if !PaymentSucceeded(returnURL) {
		return user, nil
	}

	logging.LogUpgrade(logger, user.ID, user.IsPro)
	return account.Upgrade(ctx, ds, user)
}
