package core

import (
	"errors"
	"fmt"
)

// ErrSessionActive is returned when a user is activated while another one is
// still active. Switching users goes through a logout first.
var ErrSessionActive = errors.New("a user session is already active")

// ErrWalletNotFound is returned when the active user has no wallet with the
// given id.
var ErrWalletNotFound error = &ValidationError{Field: "wallet_id", Message: "wallet not found"}

// ErrTransactionNotFound is returned when none of the active user's wallets
// holds a transaction with the given id.
var ErrTransactionNotFound error = &ValidationError{Field: "id", Message: "transaction not found"}

// ValidationError is raised before any request is sent.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// APIError is a response the API rejected, either by status code or by a
// success=false envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error (status %d)", e.StatusCode)
	}

	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// NetworkError wraps a request that never got a response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNetworkError(err error) bool {
	var n *NetworkError
	return errors.As(err, &n)
}

func IsAPIError(err error) bool {
	var a *APIError
	return errors.As(err, &a)
}
