package grammar

import (
	"time"

	"schedule-interpreter/internal/command"
)

// Context is the read-only snapshot a parse runs against.
type Context struct {
	// Aliases maps normalized alias spellings (PR7, PZ02) to item ids.
	Aliases map[string]string
	// DefaultYear is used for spoken dates without a year.
	DefaultYear int
	// Today enables relative dates such as "sutra". Zero disables them.
	Today time.Time
}

// Profile is a named pair of start/end day offsets.
type Profile struct {
	ID              string
	Names           []string
	StartOffsetDays int
	EndOffsetDays   int
}

// Rejection records a family whose structure matched but whose parameters did not resolve.
type Rejection struct {
	Family string
	Err    error
}

// matchFunc returns (nil, nil) when the utterance does not fit the family at all.
type matchFunc func(u utterance, pc Context) (command.Command, error)

type family struct {
	name  string
	match matchFunc
}

// utterance carries the trimmed raw text next to its normalized form.
type utterance struct {
	raw  string
	text string
}
