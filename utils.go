package neotags

import (
	"fmt"
	"strconv"
	"strings"
)

// SplitList splits a colon-delimited argument such as "foo:bar:".
// A single trailing colon terminates the list rather than adding an empty
// entry; empty input yields nil.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}

	s = strings.TrimSuffix(s, ":")
	if s == "" {
		return []string{""}
	}

	return strings.Split(s, ":")
}

// ParseCount parses a non-negative decimal integer argument.
func ParseCount(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, newError(KindInvalidInt, "parse integer", fmt.Errorf("invalid integer %q", s))
	}

	if n < 0 {
		return 0, newError(KindInvalidInt, "parse integer", fmt.Errorf("negative integer %q", s))
	}

	return n, nil
}
