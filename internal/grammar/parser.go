package grammar

import (
	"strings"

	"schedule-interpreter/internal/alias"
	"schedule-interpreter/internal/command"
	"schedule-interpreter/pkg/lexicon"
)

// Parse returns the command of the first family that both matches the
// utterance and resolves all of its parameters. When none does it returns a
// *NoMatchError listing the families that matched but were rejected.
func (p *Parser) Parse(text string, pc Context) (command.Command, error) {
	u := newUtterance(text)
	if u.text == "" {
		return nil, &NoMatchError{Text: u.raw}
	}

	var rejected []Rejection
	for _, f := range p.families {
		cmd, err := f.match(u, pc)
		if err != nil {
			rejected = append(rejected, Rejection{Family: f.name, Err: err})
			continue
		}
		if cmd != nil {
			return cmd, nil
		}
	}
	return nil, &NoMatchError{Text: u.raw, Rejected: rejected}
}

func newUtterance(text string) utterance {
	raw := strings.TrimSpace(text)
	return utterance{raw: raw, text: lexicon.StripFillers(lexicon.Normalize(raw))}
}

// resolveAlias normalizes a captured alias and looks it up.
func resolveAlias(captured string, pc Context) (string, string, error) {
	a := alias.Normalize(captured)
	line, ok := pc.Aliases[a]
	if !ok {
		return a, "", ErrUnresolvedAlias
	}
	return a, line, nil
}

// resolveDelta combines numeral, unit and direction captures into signed days.
func resolveDelta(numeral, unit, direction string) (int, error) {
	n, ok := lexicon.Days(numeral, unit, direction)
	if !ok {
		return 0, ErrUnresolvedNumeral
	}
	return n, nil
}
