package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a lookup or update targets a key that
	// is not in the store.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert violates a primary key or
	// unique index.
	ErrDuplicate = errors.New("duplicate key")
)

// translate maps gorm errors onto the store's error taxonomy. Requires
// the connection to be opened with TranslateError so driver-level
// constraint failures surface as gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
