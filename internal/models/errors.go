package models

import "errors"

// Ошибки домена, которые обработчики сопоставляют с HTTP-статусами через errors.Is.
var (
	ErrValidation         = errors.New("validation error")
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrNotFound           = errors.New("not found")
	ErrUnknownEmail       = errors.New("no user with this email")
	ErrInvalidPasscode    = errors.New("invalid passcode")
	ErrPasscodeExpired    = errors.New("passcode expired")
	ErrPasscodeThrottled  = errors.New("passcode was sent recently")
)
