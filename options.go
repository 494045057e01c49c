package neotags

import (
	"strings"

	"go.uber.org/zap"
)

// Options configures one filtering run.
type Options struct {
	// Logger receives one debug entry per record decision. nil disables logging.
	Logger *zap.Logger

	// Lang is the requested language exactly as the editor passes it.
	// It is embedded into the extraction pattern as a regular expression,
	// so escaped forms like `C\+\+` are accepted.
	Lang string

	// Order lists acceptable kind characters, e.g. "fcmt".
	Order OrderSpec

	// Skip names are rejected regardless of kind or language.
	Skip []string

	// Equiv declares languages whose tags are acceptable for another language.
	Equiv EquivalenceTable

	// Limit caps the number of emitted tags (<=0 = unlimited).
	Limit int
}

// normalized returns a copy with implicit defaults applied.
func (o Options) normalized() Options {
	out := o

	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}

	if out.Limit < 0 {
		out.Limit = 0
	}

	return out
}

// OrderSpec is a set of acceptable kind characters.
// Despite the name it carries no ordering semantics.
type OrderSpec string

// Has reports whether kind is an accepted kind character.
func (o OrderSpec) Has(kind byte) bool {
	return strings.IndexByte(string(o), kind) >= 0
}

// SkipList is a set of tag names to always reject.
type SkipList map[string]struct{}

// NewSkipList builds a SkipList from names. Empty names are ignored.
func NewSkipList(names []string) SkipList {
	out := make(SkipList, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}

		out[n] = struct{}{}
	}

	return out
}

// Has reports whether name is skipped (exact match).
func (s SkipList) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// LangPair declares tags of language From acceptable when To is requested.
type LangPair struct {
	From string
	To   string
}

// EquivalenceTable is an ordered list of language pairs.
type EquivalenceTable []LangPair

// ParseEquivalence groups a flat list of alternating from/to values into pairs.
// A trailing unpaired value is ignored.
func ParseEquivalence(flat []string) EquivalenceTable {
	out := make(EquivalenceTable, 0, len(flat)/2)
	for i := 0; i+1 < len(flat); i += 2 {
		out = append(out, LangPair{From: flat[i], To: flat[i+1]})
	}

	return out
}

// aliasesOf returns the From side of every pair whose To matches lang,
// in table order and without repeats.
func (t EquivalenceTable) aliasesOf(lang string) []string {
	want := canonLang(lang)

	var out []string
	for _, p := range t {
		if p.From == "" || !strings.EqualFold(canonLang(p.To), want) {
			continue
		}

		dup := false
		for _, seen := range out {
			if strings.EqualFold(seen, p.From) {
				dup = true
				break
			}
		}

		if !dup {
			out = append(out, p.From)
		}
	}

	return out
}
