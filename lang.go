package neotags

import "strings"

// LangAccepted reports whether tags declared in language declared may be
// reported when requested is the requested language.
//
// Resolution order:
//  1. case-insensitive equality (regex escapes in requested are ignored);
//  2. both languages belong to the C/C++ family;
//  3. some pair in equiv maps declared onto requested.
func LangAccepted(declared, requested string, equiv EquivalenceTable) bool {
	want := canonLang(requested)

	if strings.EqualFold(declared, want) {
		return true
	}

	if isCFamily(requested) && isCFamily(declared) {
		return true
	}

	for _, p := range equiv {
		if strings.EqualFold(declared, p.From) && strings.EqualFold(want, canonLang(p.To)) {
			return true
		}
	}

	return false
}
