package neotags

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// Present yields, in insertion order, the tags whose name occurs anywhere in
// buffer as a literal substring. No word boundaries are applied: "cat" is
// present in "category". limit caps the number of yielded tags (<=0 = all).
func (s *ResultSet) Present(buffer string, limit int) iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		n := 0
		for _, t := range s.tags {
			if !strings.Contains(buffer, t.Name) {
				continue
			}

			if !yield(t) {
				return
			}

			n++
			if limit > 0 && n >= limit {
				return
			}
		}
	}
}

// WriteTags writes every tag as two lines, the kind character then the name.
// It returns the number of tags written.
func WriteTags(w io.Writer, tags iter.Seq[Tag]) (int, error) {
	bw := bufio.NewWriter(w)

	n := 0
	for t := range tags {
		if err := bw.WriteByte(t.Kind); err != nil {
			return n, err
		}

		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}

		if _, err := bw.WriteString(t.Name); err != nil {
			return n, err
		}

		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}

		n++
	}

	return n, bw.Flush()
}
