// Package common defines shared constants and sentinel errors used across
// pwkeeper layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Front-end errors.
	ErrorUnauthorized = errors.New("unauthorized")

	// Cryptographic primitive failures. Fatal to the call that hit them.
	ErrRandomSource = errors.New("random source unavailable")
	ErrDerivation   = errors.New("key derivation failed")

	// Credential store errors.
	ErrDuplicateIdentifier = errors.New("identifier already registered")
	ErrUnknownIdentifier   = errors.New("unknown identifier")
	ErrInvalidIdentifier   = errors.New("invalid identifier")

	// Input and policy validation.
	ErrEmptyPassword          = errors.New("empty password")
	ErrIterationsBelowMinimum = errors.New("iteration count below policy minimum")
	ErrInvalidPolicy          = errors.New("invalid hashing policy")

	// Configuration errors.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")
)
