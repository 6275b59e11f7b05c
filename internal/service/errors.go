package service

import "errors"

// Sentinel errors classifying every business failure the services can
// surface. Handlers map these to HTTP statuses with errors.Is; anything
// that matches none of them is treated as an internal error (500) and the
// detail is only logged, never returned to the client.
var (
	// ErrValidation — malformed or missing input (400).
	ErrValidation = errors.New("validation error")
	// ErrInvalidCredentials — bad username/password or unusable token (401).
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrForbidden — authenticated but wrong role or self-targeting rule (403).
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound — entity does not resolve (404).
	ErrNotFound = errors.New("not found")
	// ErrConflict — duplicate username, referenced-entity hard delete (409).
	ErrConflict = errors.New("conflict")
	// ErrInsufficientStock — requested quantity exceeds available stock, or
	// an adjustment would drive stock negative (400). Always wrapped with a
	// message naming the offending product.
	ErrInsufficientStock = errors.New("insufficient stock")
)
