package geocode

import (
	"errors"
	"fmt"
)

// NotFoundError means the provider could not resolve the ZIP code.
type NotFoundError struct {
	Zip string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("Zip code %q not found. Please enter a valid US zip code.", e.Zip)
}

// IsNotFoundError checks if an error is a NotFoundError (including wrapped errors).
func IsNotFoundError(err error) bool {
	var ne NotFoundError
	return errors.As(err, &ne)
}

// AuthError means the provider rejected our credentials.
type AuthError struct{}

func (AuthError) Error() string {
	return "Weather service authentication failed. Please contact support."
}

// IsAuthError checks if an error is an AuthError.
func IsAuthError(err error) bool {
	var ae AuthError
	return errors.As(err, &ae)
}

// LookupError covers transport failures and unexpected response shapes.
type LookupError struct {
	Zip   string
	Cause error
}

func (e LookupError) Error() string {
	return fmt.Sprintf("Failed to fetch location data for zip code %q. Please try again or contact support.", e.Zip)
}

func (e LookupError) Unwrap() error { return e.Cause }

// IsLookupError checks if an error is a LookupError.
func IsLookupError(err error) bool {
	var le LookupError
	return errors.As(err, &le)
}
