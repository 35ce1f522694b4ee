package container

import (
	"errors"
	"fmt"
)

// ErrNotRegistered is matched (via errors.Is) by every *NotRegisteredError.
var ErrNotRegistered = errors.New("container: identifier not registered")

// NotRegisteredError is returned by Resolve when an identifier has no binding.
type NotRegisteredError struct {
	// ID is the textual form of the requested identifier.
	ID string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("container: no binding registered for [%s]", e.ID)
}

// Is reports whether target is ErrNotRegistered.
func (e *NotRegisteredError) Is(target error) bool { return target == ErrNotRegistered }

// TypeMismatchError is returned by the generic helpers when the resolved
// value does not have the requested type.
type TypeMismatchError struct {
	ID   string
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("container: [%s] resolved to %s, want %s", e.ID, e.Got, e.Want)
}
