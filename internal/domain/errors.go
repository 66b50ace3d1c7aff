package domain

import "errors"

var (
	// ErrProductNotFound is returned when a barcode or food id has no match
	// in the provider database
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrProviderFailure is returned when an upstream provider request fails
	ErrProviderFailure = errors.New("provider request failed")

	// ErrProfileNotFound is returned when no profile has been saved yet
	ErrProfileNotFound = errors.New("profile not found")

	// ErrEntryNotFound is returned when a diary entry id does not exist
	ErrEntryNotFound = errors.New("diary entry not found")
)
