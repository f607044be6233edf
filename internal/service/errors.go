package service

import "errors"

// Sentinel errors surfaced to the HTTP layer. Credential and code failures
// are deliberately generic: callers must not be able to distinguish an
// unknown account from a wrong password, or a missing code from a mismatch.
var (
	ErrInvalidRequest       = errors.New("required field missing or empty")
	ErrInvalidEmailFormat   = errors.New("invalid email format")
	ErrInvalidBirthDate     = errors.New("invalid birth date")
	ErrPasswordMismatch     = errors.New("password confirmation does not match")
	ErrInvalidCode          = errors.New("invalid verification code")
	ErrExpiredCode          = errors.New("expired verification code")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrDuplicateEmail       = errors.New("duplicate email")
	ErrDuplicateNickname    = errors.New("duplicate nickname")
	ErrAccountExists        = errors.New("account already exists")
	ErrUnregisteredIdentity = errors.New("unregistered identity record")
	ErrAccountNotFound      = errors.New("account not found")
)
