package service

import "errors"

var (
	// ErrInvalidInput is returned when a request is rejected before it
	// reaches the store, e.g. an empty title or an unknown status value.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned when a login identifier and
	// credential do not resolve to a user.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when a registration reuses an email.
	ErrEmailTaken = errors.New("email already registered")
)
