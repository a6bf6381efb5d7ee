package backup

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrMissingField     = errors.New("missing field")
	ErrInvalidEnumValue = errors.New("invalid enum value")
	ErrNotFound         = errors.New("snapshot not found")
)

// FieldError reports which input key made a parse fail.
type FieldError struct {
	Field string
	Value any
	Err   error
}

func (e *FieldError) Error() string {
	if errors.Is(e.Err, ErrMissingField) {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v %q", e.Field, e.Err, fmt.Sprint(e.Value))
}

func (e *FieldError) Unwrap() error { return e.Err }
