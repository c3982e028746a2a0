package model

import "time"

// User is a user record enriched with geolocation data derived from its ZIP code.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ZipCode   string    `json:"zipCode"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Location carries the geolocation fields resolved for a ZIP code.
// It has no identity of its own; values are copied into a User.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	UTCOffset string  `json:"utcOffset"`
}

// ZipValidation is the result of probing a ZIP code against the provider.
// Lookup failures are folded into the payload, never surfaced as errors.
type ZipValidation struct {
	Valid     bool     `json:"valid"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	UTCOffset string   `json:"utcOffset,omitempty"`
	Message   string   `json:"message,omitempty"`
}

// CreateUserRequest is the inbound payload for user creation.
type CreateUserRequest struct {
	Name    string `json:"name"`
	ZipCode string `json:"zipCode"`
}

// UpdateUserRequest is the inbound payload for a partial user update.
type UpdateUserRequest struct {
	Name    *string `json:"name,omitempty"`
	ZipCode *string `json:"zipCode,omitempty"`
}
