package grammar

import (
	"regexp"
	"strings"

	"schedule-interpreter/internal/command"
)

var (
	profileHeadPattern   = regexp.MustCompile(`^(prikazi|pokazi|primijeni|primjeni|primijenite) (?:normativni profil|profil normativa|normativ|normative|profil)(?: (.+))?$`)
	scopeTailPattern     = regexp.MustCompile(`(?:^|,? )(?:na|za) (` + scopeExpr + `)$`)
	customOffsetsPattern = regexp.MustCompile(`^pocetak (.+?),? (?:i )?kraj (.+)$`)
	endOffsetPattern     = regexp.MustCompile(`^kraj (.+)$`)

	planHeadPattern = regexp.MustCompile(`^(prikazi|pokazi|primijeni|primjeni|primijenite|poravnaj) (?:standardni plan|standardni raspored|standardan plan|plan po standardu|plan|raspored)(?: (.+))?$`)
)

// planOption consumes one option from the front of a standard plan tail.
type planOption struct {
	pattern *regexp.Regexp
	apply   func(m []string, cmd *command.ShowStandardPlan, pc Context) error
}

var planOptions = []planOption{
	{
		pattern: regexp.MustCompile(`^s razmakom (?:od )?([^,]+?) (` + unitExpr + `)\b`),
		apply: func(m []string, cmd *command.ShowStandardPlan, _ Context) error {
			gap, err := resolveDelta(m[1], m[2], "")
			if err != nil {
				return err
			}
			if gap < 0 {
				return ErrUnresolvedNumeral
			}
			cmd.GapDays = gap
			return nil
		},
	},
	{
		pattern: regexp.MustCompile(`^bez razmaka\b`),
		apply: func(_ []string, cmd *command.ShowStandardPlan, _ Context) error {
			cmd.GapDays = 0
			return nil
		},
	},
	{
		pattern: regexp.MustCompile(`^od (` + isoDateExpr + `|` + dottedExpr + `)`),
		apply: func(m []string, cmd *command.ShowStandardPlan, pc Context) error {
			date, err := resolveDate(m[1], pc)
			if err != nil {
				return err
			}
			cmd.Anchor = command.Anchor{Kind: command.AnchorDate, Date: date}
			return nil
		},
	},
	{
		pattern: regexp.MustCompile(`^zadrzi (?:pocetke|pocetak|pocetne datume)\b`),
		apply: func(_ []string, cmd *command.ShowStandardPlan, _ Context) error {
			cmd.DurationPolicy = command.PreserveStart
			return nil
		},
	},
	{
		pattern: regexp.MustCompile(`^zadrzi (?:trajanje|trajanja)\b`),
		apply: func(_ []string, cmd *command.ShowStandardPlan, _ Context) error {
			cmd.DurationPolicy = command.PreserveDuration
			return nil
		},
	},
	{
		pattern: regexp.MustCompile(`^samo (?:naprijed|unaprijed|prema naprijed)\b`),
		apply: func(_ []string, cmd *command.ShowStandardPlan, _ Context) error {
			cmd.Adjust = command.AdjustForwardOnly
			return nil
		},
	},
	{
		pattern: regexp.MustCompile(`^(?:u )?oba smjera\b`),
		apply: func(_ []string, cmd *command.ShowStandardPlan, _ Context) error {
			cmd.Adjust = command.AdjustBoth
			return nil
		},
	},
	{
		pattern: regexp.MustCompile(`^(?:za|na) (` + scopeExpr + `)\b`),
		apply: func(m []string, cmd *command.ShowStandardPlan, pc Context) error {
			scope, err := resolveScope(m[1], pc)
			if err != nil {
				return err
			}
			cmd.Scope = scope
			return nil
		},
	},
}

func modeOf(verb string) command.Mode {
	switch verb {
	case "prikazi", "pokazi":
		return command.ModePreview
	}
	return command.ModeCommit
}

func (p *Parser) matchNormativeProfile(u utterance, pc Context) (command.Command, error) {
	m := profileHeadPattern.FindStringSubmatch(u.text)
	if m == nil {
		return nil, nil
	}

	cmd := command.ApplyNormativeProfile{Scope: command.ScopeAll(), Mode: modeOf(m[1])}
	body := m[2]
	if loc := scopeTailPattern.FindStringSubmatchIndex(body); loc != nil {
		scope, err := resolveScope(body[loc[2]:loc[3]], pc)
		if err != nil {
			return nil, err
		}
		cmd.Scope = scope
		body = body[:loc[0]]
	}
	body = strings.Trim(body, " ,")

	switch {
	case body == "":
		def := p.profiles[0]
		cmd.ProfileID, cmd.StartOffsetDays, cmd.EndOffsetDays = def.ID, def.StartOffsetDays, def.EndOffsetDays
	case customOffsetsPattern.MatchString(body):
		o := customOffsetsPattern.FindStringSubmatch(body)
		start, err := resolveOffset(o[1])
		if err != nil {
			return nil, err
		}
		end, err := resolveOffset(o[2])
		if err != nil {
			return nil, err
		}
		cmd.ProfileID, cmd.StartOffsetDays, cmd.EndOffsetDays = CustomProfileID, start, end
	case endOffsetPattern.MatchString(body):
		end, err := resolveOffset(endOffsetPattern.FindStringSubmatch(body)[1])
		if err != nil {
			return nil, err
		}
		cmd.ProfileID, cmd.EndOffsetDays = CustomProfileID, end
	default:
		pr, ok := p.profileNames[body]
		if !ok {
			return nil, nil
		}
		cmd.ProfileID, cmd.StartOffsetDays, cmd.EndOffsetDays = pr.ID, pr.StartOffsetDays, pr.EndOffsetDays
	}
	return cmd, nil
}

func matchStandardPlan(u utterance, pc Context) (command.Command, error) {
	m := planHeadPattern.FindStringSubmatch(u.text)
	if m == nil {
		return nil, nil
	}
	// A bare "prikazi plan" is not a plan alignment request.
	if m[2] == "" && !strings.Contains(u.text, "standard") && m[1] != "poravnaj" {
		return nil, nil
	}

	cmd := command.ShowStandardPlan{
		Scope:          command.ScopeAll(),
		Anchor:         command.Anchor{Kind: command.AnchorFirstItem},
		Adjust:         command.AdjustBoth,
		DurationPolicy: command.PreserveDuration,
		Mode:           modeOf(m[1]),
	}

	rest := m[2]
	for {
		rest = strings.TrimLeft(rest, " ,")
		rest = strings.TrimPrefix(rest, "i ")
		if rest == "" {
			break
		}

		matched := false
		for _, opt := range planOptions {
			om := opt.pattern.FindStringSubmatch(rest)
			if om == nil {
				continue
			}
			if err := opt.apply(om, &cmd, pc); err != nil {
				return nil, err
			}
			rest = rest[len(om[0]):]
			matched = true
			break
		}
		if !matched {
			return nil, nil
		}
	}
	if cmd.DurationPolicy == command.PreserveStart && cmd.Anchor.Kind == command.AnchorDate {
		return nil, ErrConflictingOptions
	}
	return cmd, nil
}
