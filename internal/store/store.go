// Package store holds the gorm-backed repositories for news, comments and users.
package store

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrUsernameTaken = errors.New("username already taken")
)

// notFound maps gorm's sentinel onto ErrNotFound and leaves other errors as they are.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
