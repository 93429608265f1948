package nft

import (
	"errors"
	"fmt"
)

var ErrInvalidArgument = errors.New("invalid argument")

// DuplicateNameError is returned by a mint when the name is already taken.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return "already mint"
}

// NotFoundError is returned when an id has never been minted.
type NotFoundError struct {
	Id uint64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("token %d not found", e.Id)
}

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
