package lexicon

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ordinals = map[string]int{}

func init() {
	for base, n := range ordinalBases {
		ordinals[base] = n
		stem := strings.TrimSuffix(base, "i")
		for _, suffix := range ordinalSuffixes {
			ordinals[stem+suffix] = n
		}
	}
}

var punctReplacer = strings.NewReplacer(
	"!", " ", "?", " ", "\"", " ", "'", " ", "(", " ", ")", " ", ":", " ",
	"„", " ", "“", " ", "”", " ", ";", ", ", ",", ", ",
)

// Normalize lowercases s, folds diacritics to their ASCII base letter and
// collapses whitespace. Trailing sentence punctuation is dropped.
func Normalize(s string) string {
	s = Fold(strings.ToLower(s))
	s = punctReplacer.Replace(s)
	s = strings.Join(strings.Fields(s), " ")
	s = strings.ReplaceAll(s, " ,", ",")
	s = strings.TrimRight(s, " .,")
	return strings.TrimLeft(s, " ,")
}

// Fold removes combining marks (č → c, š → s, ž → z). đ has no decomposition
// and is mapped to d explicitly.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.NewReplacer("đ", "d", "Đ", "D").Replace(folded)
}

// StripFillers removes polite filler phrases from both ends of a normalized utterance.
func StripFillers(s string) string {
	for changed := true; changed; {
		changed = false
		for _, f := range fillers {
			switch {
			case s == f:
				s = ""
				changed = true
			case strings.HasPrefix(s, f+" ") || strings.HasPrefix(s, f+","):
				s = strings.TrimLeft(s[len(f):], " ,")
				changed = true
			case strings.HasSuffix(s, " "+f) || strings.HasSuffix(s, ","+f):
				s = strings.TrimRight(s[:len(s)-len(f)], " ,")
				changed = true
			}
		}
	}
	return s
}

// Number resolves a digit string or a Croatian cardinal/ordinal phrase
// (including dvadeset-N compounds) to an integer.
func Number(tok string) (int, bool) {
	tok = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(tok), "."))
	if tok == "" {
		return 0, false
	}

	if n, err := strconv.Atoi(tok); err == nil {
		if n > maxDigitNumber || n < -maxDigitNumber {
			return 0, false
		}
		return n, true
	}

	words := strings.FieldsFunc(tok, func(r rune) bool { return r == ' ' || r == '-' })
	parts := make([]string, 0, len(words))
	for _, w := range words {
		if w != "i" {
			parts = append(parts, w)
		}
	}

	switch len(parts) {
	case 1:
		if n, ok := word(parts[0]); ok {
			return n, true
		}
		// Glued compounds such as "dvadesetjedan".
		for prefix, tens := range compoundTens {
			if rest, found := strings.CutPrefix(parts[0], prefix); found && rest != "" {
				return compound(tens, rest)
			}
		}
	case 2:
		if tens, ok := compoundTens[parts[0]]; ok {
			return compound(tens, parts[1])
		}
	}
	return 0, false
}

func word(w string) (int, bool) {
	if n, ok := cardinals[w]; ok {
		return n, true
	}
	n, ok := ordinals[w]
	return n, ok
}

func compound(tens int, unit string) (int, bool) {
	n, ok := word(unit)
	if !ok || n < 1 || n > 9 {
		return 0, false
	}
	if tens+n > maxWordNumber {
		return 0, false
	}
	return tens + n, true
}

// SignedNumber resolves a numeral phrase that may start with plus/minus. A
// sign word followed by an already signed digit string is rejected.
func SignedNumber(phrase string) (int, bool) {
	sign, rest, signed := splitSign(phrase)
	if signed && (strings.HasPrefix(rest, "-") || strings.HasPrefix(rest, "+")) {
		return 0, false
	}
	n, ok := Number(rest)
	if !ok {
		return 0, false
	}
	return sign * n, true
}

func splitSign(phrase string) (int, string, bool) {
	phrase = strings.TrimSpace(phrase)
	if head, rest, found := strings.Cut(phrase, " "); found {
		switch {
		case negativeSigns[head]:
			return -1, strings.TrimSpace(rest), true
		case positiveSigns[head]:
			return 1, strings.TrimSpace(rest), true
		}
	}
	return 1, phrase, false
}

// Month resolves a month name, ordinal word, or "N."/"N" token to 1–12.
func Month(tok string) (int, bool) {
	tok = strings.TrimSpace(tok)
	tok = strings.TrimSuffix(tok, " mjeseca")
	tok = strings.TrimSuffix(tok, " mjesec")
	if m, ok := monthNames[tok]; ok {
		return m, true
	}
	m, ok := Number(tok)
	if !ok || m < 1 || m > 12 {
		return 0, false
	}
	return m, true
}

// UnitDays returns the number of days one unit token stands for.
func UnitDays(tok string) (int, bool) {
	n, ok := unitDays[strings.TrimSpace(tok)]
	return n, ok
}

// Direction maps a direction word to +1 or -1. An empty token means forward.
func Direction(tok string) (int, bool) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return 1, true
	}
	d, ok := directions[tok]
	return d, ok
}

// Days combines a signed numeral phrase, a unit token and an optional
// direction word into a day delta. An empty numeral counts as one unit, and a
// unit word in numeral position followed by a day unit ("tjedan dana") counts
// as one of that unit.
func Days(numeral, unit, direction string) (int, bool) {
	mult, ok := UnitDays(unit)
	if !ok {
		return 0, false
	}
	n, ok := count(numeral, mult)
	if !ok {
		return 0, false
	}
	dir, ok := Direction(direction)
	if !ok {
		return 0, false
	}
	return n * dir, true
}

func count(numeral string, mult int) (int, bool) {
	sign, rest, signed := splitSign(numeral)
	if rest == "" {
		if signed {
			return 0, false
		}
		return mult, true
	}
	if m, ok := UnitDays(rest); ok {
		if mult != 1 {
			return 0, false
		}
		return sign * m, true
	}
	n, ok := SignedNumber(numeral)
	if !ok {
		return 0, false
	}
	return n * mult, true
}
