package models

import "errors"

var (
	// ErrInvalidDuration is returned when a session duration is non-positive or not allowed
	ErrInvalidDuration = errors.New("invalid sharing duration")
	// ErrInvalidVisibilityScope is returned for a scope that nobody could ever see
	ErrInvalidVisibilityScope = errors.New("invalid visibility scope: share with all or pick at least one group")
	// ErrInvalidPosition is returned for out of range coordinates
	ErrInvalidPosition = errors.New("invalid position")
	// ErrSessionNotFound is returned by status lookups when no session exists for the key
	ErrSessionNotFound = errors.New("location session not found")
	// ErrInvalidPermission is returned for an unknown device permission value
	ErrInvalidPermission = errors.New("invalid location permission")
	// ErrInvalidTent is returned when a suggestion call carries no tent id
	ErrInvalidTent = errors.New("tent id is required")
)

// Warnings attached to a successful StartSharing
const (
	WarningBackgroundUnavailable = "background location unavailable: sharing only continues while the app is open"
	WarningPermissionDenied      = "location permission unavailable: your position will not be shared until access is granted"
)
