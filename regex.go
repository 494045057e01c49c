package neotags

import (
	"fmt"
	"regexp"
	"strings"
)

// Extraction pattern pieces. A tag line looks like
//
//	name<TAB>file<TAB>/pattern/;"<TAB>kind<TAB>language:LANG[<TAB>...]
//
// Groups: 1 = name, 2 = kind, 3 = declared language.
const (
	patternHead = `(?i)^([^\t]+)\t[^\t]+\t/.+/;"\t(\w)\tlanguage:(`
	patternTail = `)(?:\t|$)`

	// cFamily matches both C and C++ declarations.
	cFamily = `(?:C|C\+\+)`
)

// BuildPattern compiles the extraction pattern for lang.
//
// lang is embedded verbatim as a regular expression fragment; C, C++ and
// C\+\+ are widened to match either C or C++. Languages that equiv maps onto
// lang are added to the alternation as literals so their declarations are
// captured too. The language group must end at a tab or end of line.
func BuildPattern(lang string, equiv EquivalenceTable) (*regexp.Regexp, error) {
	expr := patternHead + langFragment(lang, equiv) + patternTail

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, newError(KindPattern, "compile pattern", fmt.Errorf("language %q: %w", lang, err))
	}

	// A fragment like `Go)|(x` compiles but breaks the group layout.
	if n := re.NumSubexp(); n != 3 {
		return nil, newError(KindPattern, "compile pattern", fmt.Errorf("language %q: pattern has %d groups, want 3", lang, n))
	}

	return re, nil
}

func langFragment(lang string, equiv EquivalenceTable) string {
	alts := []string{normalizeLang(lang)}

	for _, a := range equiv.aliasesOf(lang) {
		if strings.EqualFold(a, canonLang(lang)) || (isCFamily(lang) && isCFamily(a)) {
			continue
		}

		alts = append(alts, regexp.QuoteMeta(a))
	}

	if len(alts) == 1 {
		return alts[0]
	}

	return "(?:" + strings.Join(alts, "|") + ")"
}

// normalizeLang treats C and C++ as one language for extraction.
func normalizeLang(lang string) string {
	if isCFamily(lang) {
		return cFamily
	}

	return lang
}

// isCFamily reports whether s names C or C++ (plain or regex-escaped).
func isCFamily(s string) bool {
	return strings.EqualFold(s, "C") ||
		strings.EqualFold(s, "C++") ||
		strings.EqualFold(s, `C\+\+`)
}

// canonLang drops regex escapes so `C\+\+` compares equal to "C++".
func canonLang(s string) string {
	if strings.IndexByte(s, '\\') < 0 {
		return s
	}

	return strings.ReplaceAll(s, `\`, "")
}
