package errors

import "net/http"

var (
	ErrNotFound = New(
		"NOT_FOUND",
		"Resource not found",
		http.StatusNotFound,
	)

	ErrMethodNotAllowed = New(
		"METHOD_NOT_ALLOWED",
		"Method not allowed",
		http.StatusMethodNotAllowed,
	)

	ErrBadRequest = New(
		"BAD_REQUEST",
		"Bad request",
		http.StatusBadRequest,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
