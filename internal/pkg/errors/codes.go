package errors

import "net/http"

var (
	ErrSystemNotFound = New(
		"SYSTEM_NOT_FOUND",
		"One or more system IDs not found in EVE Online universe",
		http.StatusNotFound,
	)

	ErrESIUnavailable = New(
		"ESI_UNAVAILABLE",
		"Unable to retrieve system information. Please try again later.",
		http.StatusBadGateway,
	)

	ErrESIInvalidResponse = New(
		"ESI_INVALID_RESPONSE",
		"Invalid system data received from upstream",
		http.StatusInternalServerError,
	)

	// ErrSystemExists is returned by the store on a duplicate insert.
	// It never reaches a client: callers treat it as a concurrent
	// save having won and re-read the stored row.
	ErrSystemExists = New(
		"SYSTEM_EXISTS",
		"System already stored",
		http.StatusConflict,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	// ErrStoreInconsistent is returned when a row read back right
	// after a successful insert is missing.
	ErrStoreInconsistent = New(
		"STORE_INCONSISTENT",
		"Internal server error",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrRateLimited = New(
		"RATE_LIMITED",
		"Rate limit exceeded. Please try again later.",
		http.StatusTooManyRequests,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
