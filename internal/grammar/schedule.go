package grammar

import (
	"regexp"
	"strings"

	"schedule-interpreter/internal/command"
	"schedule-interpreter/pkg/lexicon"
)

var (
	shiftPattern = regexp.MustCompile(`^(?:pomakni|pomaknite|odgodi|odgodite|prebaci|pozicija|pomakni poziciju|odgodi poziciju) (` +
		aliasExpr + `)(?: za)?(?: ([^,]+?))? (` + unitExpr + `)(?: (` + directionExpr + `))?$`)

	shiftAllPattern = regexp.MustCompile(`^(?:pomakni|pomaknite|odgodi|odgodite|prebaci|prebacite) (?:sve pozicije|sve stavke|cijeli plan|cijeli raspored|sve|plan|raspored)(?: za)?(?: ([^,]+?))? (` +
		unitExpr + `)(?: (` + directionExpr + `))?$`)

	moveStartPattern = regexp.MustCompile(`^(?:pomakni|pomaknite|postavi|postavite|prebaci|prebacite|stavi|stavite)(?: pocetak)?(?: od)?(?: pozicij[eau])? (` +
		aliasExpr + `) na (.+)$`)

	batchClausePattern = regexp.MustCompile(`\bpozicij[aeu] (` + aliasExpr + `)(?: za)?(?: ([^,]+?))? (` +
		unitExpr + `)\b(?: (` + directionExpr + `)\b)?`)

	normativeExtendPattern = regexp.MustCompile(`^(?:normativ|normativ produzi|produzi sve|produzi sve pozicije|produzi kraj svih|produzi krajeve|produzi kraj svih pozicija)(?: za)?(?: ([^,]+?))? (` +
		unitExpr + `)$`)

	distributeChainPattern = regexp.MustCompile(`^(?:(?:rasporedi|poredaj|slozi|nanizi)(?: sve| sve pozicije| pozicije| stavke)?(?: u)? (?:lanac|lancano|redom|jednu za drugom|jedno za drugim)|lancano rasporedi(?: sve)?|napravi lanac)$`)
)

func matchShift(u utterance, pc Context) (command.Command, error) {
	m := shiftPattern.FindStringSubmatch(u.text)
	if m == nil {
		return nil, nil
	}
	shift, err := resolveShift(m[1], m[2], m[3], m[4], pc)
	if err != nil {
		return nil, err
	}
	return shift, nil
}

func resolveShift(aliasTok, numeral, unit, direction string, pc Context) (command.Shift, error) {
	a, line, err := resolveAlias(aliasTok, pc)
	if err != nil {
		return command.Shift{}, err
	}
	delta, err := resolveDelta(numeral, unit, direction)
	if err != nil {
		return command.Shift{}, err
	}
	return command.Shift{Alias: a, TargetLine: line, DeltaDays: delta}, nil
}

func matchShiftAll(u utterance, _ Context) (command.Command, error) {
	m := shiftAllPattern.FindStringSubmatch(u.text)
	if m == nil {
		return nil, nil
	}
	delta, err := resolveDelta(m[1], m[2], m[3])
	if err != nil {
		return nil, err
	}
	return command.ShiftAll{DeltaDays: delta}, nil
}

func matchMoveStart(u utterance, pc Context) (command.Command, error) {
	m := moveStartPattern.FindStringSubmatch(u.text)
	if m == nil {
		return nil, nil
	}
	a, line, err := resolveAlias(m[1], pc)
	if err != nil {
		return nil, err
	}
	date, err := resolveDate(m[2], pc)
	if err != nil {
		return nil, err
	}
	return command.MoveStart{Alias: a, TargetLine: line, Date: date}, nil
}

// matchBatch needs at least two clauses and nothing but separators between them.
func matchBatch(u utterance, pc Context) (command.Command, error) {
	locs := batchClausePattern.FindAllStringSubmatchIndex(u.text, -1)
	if len(locs) < 2 {
		return nil, nil
	}

	var rest strings.Builder
	prev := 0
	for _, loc := range locs {
		rest.WriteString(u.text[prev:loc[0]])
		rest.WriteByte(' ')
		prev = loc[1]
	}
	rest.WriteString(u.text[prev:])
	for _, tok := range strings.Fields(strings.ReplaceAll(rest.String(), ",", " ")) {
		if !batchSeparators[tok] {
			return nil, nil
		}
	}

	shifts := make([]command.Shift, 0, len(locs))
	for _, loc := range locs {
		group := func(i int) string {
			if loc[2*i] < 0 {
				return ""
			}
			return u.text[loc[2*i]:loc[2*i+1]]
		}
		shift, err := resolveShift(group(1), group(2), group(3), group(4), pc)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}
	return command.BatchOperations{Shifts: shifts}, nil
}

func matchNormativeExtend(u utterance, _ Context) (command.Command, error) {
	m := normativeExtendPattern.FindStringSubmatch(u.text)
	if m == nil {
		return nil, nil
	}
	delta, err := resolveDelta(m[1], m[2], "")
	if err != nil {
		return nil, err
	}
	return command.NormativeExtend{DeltaDays: delta}, nil
}

func matchDistributeChain(u utterance, _ Context) (command.Command, error) {
	if distributeChainPattern.MatchString(u.text) {
		return command.DistributeChain{}, nil
	}
	return nil, nil
}

// resolveScope turns "sve" or an alias list into a command scope.
func resolveScope(spoken string, pc Context) (command.Scope, error) {
	if strings.HasPrefix(spoken, "sve") {
		return command.ScopeAll(), nil
	}

	var scope command.Scope
	for _, tok := range aliasPattern.FindAllString(spoken, -1) {
		a, line, err := resolveAlias(tok, pc)
		if err != nil {
			return command.Scope{}, err
		}
		scope.Aliases = append(scope.Aliases, a)
		scope.Lines = append(scope.Lines, line)
	}
	if len(scope.Lines) == 0 {
		return command.Scope{}, ErrUnresolvedAlias
	}
	return scope, nil
}

var aliasPattern = regexp.MustCompile(aliasExpr)

// resolveOffset parses a signed day count such as "minus dva" or "+3".
func resolveOffset(spoken string) (int, error) {
	spoken = strings.TrimSuffix(strings.TrimSuffix(strings.TrimSpace(spoken), " dana"), " dan")
	n, ok := lexicon.SignedNumber(spoken)
	if !ok {
		return 0, ErrUnresolvedNumeral
	}
	return n, nil
}
