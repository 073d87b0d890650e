package common

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"pinboard/internal/apperr"
)

// ErrPasswordMismatch means the hash is well formed but belongs to another
// password.
var ErrPasswordMismatch = apperr.New(apperr.KindUnauthenticated, "password does not match")

// PasswordCost is the bcrypt work factor for new hashes.
const PasswordCost = bcrypt.DefaultCost

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	switch {
	case errors.Is(err, bcrypt.ErrPasswordTooLong):
		return "", apperr.InvalidInput("password must be at most 72 characters long")
	case err != nil:
		return "", apperr.Wrap(apperr.KindInternal, err, "failed to hash password")
	}
	return string(hashed), nil
}

// CheckPassword returns ErrPasswordMismatch for a wrong password and an
// internal error when the stored hash itself is unusable.
func CheckPassword(password, hashedPassword string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return apperr.Wrap(apperr.KindInternal, err, "stored password hash is unusable")
	}
}
