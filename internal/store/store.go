package store

import "errors"

// Sentinel errors handlers translate to HTTP status codes. Ownership misses
// surface as gorm.ErrRecordNotFound so cross-tenant access is
// indistinguishable from absent rows.
var (
	// ErrInvalidTransition is returned when a status change is not allowed
	// by the lifecycle transition table.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidStatus is returned when a status value is not a known enum
	// member.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrThemeNotFound is returned when a website references an unknown
	// predefined theme.
	ErrThemeNotFound = errors.New("theme not found")
)
