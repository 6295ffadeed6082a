package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidItem  = errors.New("invalid item")
	ErrInvalidIndex = errors.New("invalid item index")
	ErrEmptyCart    = errors.New("cannot complete checkout: cart is empty")
)

type ValidationKind int

const (
	ValidationMalformed ValidationKind = iota
	ValidationOutOfRange
)

// String representation (for error messages)
func (k ValidationKind) String() string {
	switch k {
	case ValidationMalformed:
		return "missing or malformed fields"
	case ValidationOutOfRange:
		return "out of range"
	default:
		return "unknown"
	}
}

// ValidationError reports why an ItemInput was rejected.
// Fields holds one human readable problem per offending field.
type ValidationError struct {
	Kind   ValidationKind
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidItem, e.Kind, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidItem
}

type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s %d: cart has %d items", ErrInvalidIndex, e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrInvalidIndex
}
