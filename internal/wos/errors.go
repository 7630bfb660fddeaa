package wos

import (
	"errors"
	"fmt"
)

// ErrMultipleOrganizations indicates an address listed more than one
// primary organization. The source schema guarantees at most one, so
// this is schema drift and must not be silently coerced.
var ErrMultipleOrganizations = errors.New("multiple primary organizations for address")

// ParseError is a fatal failure to read a mandatory record field.
type ParseError struct {
	UID   string // record id where known, "" otherwise
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	uid := e.UID
	if uid == "" {
		uid = "unknown record"
	}
	if e.Err != nil {
		return fmt.Sprintf("parsing %s: %s: %s", uid, e.Field, e.Err)
	}
	return fmt.Sprintf("parsing %s: missing %s", uid, e.Field)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsSchemaDrift reports whether the error indicates a violated source
// schema invariant rather than ordinary missing data.
func IsSchemaDrift(err error) bool {
	return errors.Is(err, ErrMultipleOrganizations)
}
