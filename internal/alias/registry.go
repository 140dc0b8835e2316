package alias

import (
	"fmt"
	"regexp"
	"strings"

	"schedule-interpreter/internal/model"
)

// DefaultPrefix is prepended to the counter when minting aliases.
const DefaultPrefix = "PR"

var embeddedCodePattern = regexp.MustCompile(`\b[A-Za-z]{2}\d{1,3}\b`)

// Registry maps short codes to schedule item ids.
//
// Explicit aliases are minted from a counter by Assign and are 1:1 with
// items. Embedded codes found in item ids or labels are registered passively
// as extra spellings and never advance the counter. When a code is bound
// twice the first binding wins. Registry is not safe for concurrent use.
type Registry struct {
	prefix      string
	counter     int
	aliasByLine map[string]string
	lineByAlias map[string]string
	embedded    map[string]string
}

// New creates an empty registry. An empty prefix falls back to DefaultPrefix.
func New(prefix string) *Registry {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Registry{
		prefix:      Normalize(prefix),
		aliasByLine: make(map[string]string),
		lineByAlias: make(map[string]string),
		embedded:    make(map[string]string),
	}
}

// Normalize upper-cases an alias and strips whitespace so "pr 10" equals "PR10".
func Normalize(alias string) string {
	return strings.ToUpper(strings.Join(strings.Fields(alias), ""))
}

// Assign returns the alias of itemID, minting the next one if needed.
func (r *Registry) Assign(itemID string) string {
	if a, ok := r.aliasByLine[itemID]; ok {
		return a
	}

	var a string
	for {
		r.counter++
		a = fmt.Sprintf("%s%d", r.prefix, r.counter)
		if _, taken := r.embedded[a]; !taken {
			break
		}
	}

	r.aliasByLine[itemID] = a
	r.lineByAlias[a] = itemID
	return a
}

// RegisterEmbeddedCodes binds every first-seen two-letters-plus-digits token
// in text to itemID and returns the codes that were newly bound.
func (r *Registry) RegisterEmbeddedCodes(itemID, text string) []string {
	var bound []string
	for _, raw := range embeddedCodePattern.FindAllString(text, -1) {
		code := Normalize(raw)
		if _, ok := r.lineByAlias[code]; ok {
			continue
		}
		if _, ok := r.embedded[code]; ok {
			continue
		}
		r.embedded[code] = itemID
		bound = append(bound, code)
	}
	return bound
}

// Resolve returns the item id for an alias or embedded code.
func (r *Registry) Resolve(alias string) (string, bool) {
	a := Normalize(alias)
	if id, ok := r.lineByAlias[a]; ok {
		return id, true
	}
	id, ok := r.embedded[a]
	return id, ok
}

// AliasOf returns the explicit alias of an item.
func (r *Registry) AliasOf(itemID string) (string, bool) {
	a, ok := r.aliasByLine[itemID]
	return a, ok
}

// AssignAll assigns aliases to every item in document order and then
// registers embedded codes from each item's id and label.
func (r *Registry) AssignAll(items []model.Item) map[string]string {
	out := make(map[string]string, len(items))
	for _, it := range items {
		out[it.ID] = r.Assign(it.ID)
	}
	for _, it := range items {
		r.RegisterEmbeddedCodes(it.ID, it.ID+" "+it.Label)
	}
	return out
}

// Lookup returns a snapshot of every alias and embedded code mapped to its
// item id, for use as a parser context.
func (r *Registry) Lookup() map[string]string {
	out := make(map[string]string, len(r.lineByAlias)+len(r.embedded))
	for code, id := range r.embedded {
		out[code] = id
	}
	for a, id := range r.lineByAlias {
		out[a] = id
	}
	return out
}

// Len is the number of explicitly assigned aliases.
func (r *Registry) Len() int {
	return len(r.aliasByLine)
}
