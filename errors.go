package ecs

import "github.com/pkg/errors"

// Sentinel errors returned by World operations. Callers compare against
// these with errors.Is; wrapped context is added via errorf.
var (
	ErrInvalidEntity      = errors.New("ecs: invalid entity")
	ErrComponentAbsent    = errors.New("ecs: component absent")
	ErrDuplicateComponent = errors.New("ecs: duplicate component")
	ErrArchetypeOverflow  = errors.New("ecs: archetype row exceeds chunk size")
	ErrAllocationFailed   = errors.New("ecs: allocation failed")
)

// errorf wraps sentinel with a formatted message, preserving it for
// errors.Is while attaching call-site detail for logs.
func errorf(sentinel error, format string, args ...any) error {
	return errors.Wrapf(sentinel, format, args...)
}
