package apperrors

import "net/http"

// Factories for the common business-logic errors. Repositories return plain
// sentinel errors; services wrap them here before handing them to handlers.

// ErrNotFound converts a repository not-found error into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrConflict reports a state conflict (409).
func ErrConflict(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidOperation reports an operation the current state does not allow (400).
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrDatabase wraps an unexpected database failure (500).
func ErrDatabase(err error, domain string) *AppError {
	return Wrap(err, CodeDatabaseError, domain, "Database operation failed", http.StatusInternalServerError)
}

// ErrExternalService wraps a failure of an upstream collaborator (502).
func ErrExternalService(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusBadGateway)
}
