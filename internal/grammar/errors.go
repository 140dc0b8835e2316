package grammar

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoMatch           = errors.New("no command matched")
	ErrUnresolvedAlias   = errors.New("alias not found")
	ErrUnresolvedNumeral = errors.New("numeral not recognized")
	ErrUnresolvedMonth   = errors.New("month not recognized")
	ErrInvalidDate       = errors.New("invalid date")
	// ErrConflictingOptions rejects plan options that cannot hold together,
	// such as keeping every start while anchoring the first one to a date.
	ErrConflictingOptions = errors.New("conflicting plan options")
)

// NoMatchError is returned by Parse when no family produced a command.
// errors.Is(err, ErrNoMatch) holds for it.
type NoMatchError struct {
	Text     string
	Rejected []Rejection
}

func (e *NoMatchError) Error() string {
	if len(e.Rejected) == 0 {
		return fmt.Sprintf("%s: %q", ErrNoMatch, e.Text)
	}
	reasons := make([]string, 0, len(e.Rejected))
	for _, r := range e.Rejected {
		reasons = append(reasons, r.Family+": "+r.Err.Error())
	}
	return fmt.Sprintf("%s: %q (%s)", ErrNoMatch, e.Text, strings.Join(reasons, "; "))
}

func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}
