package neotags

import "io"

// Select runs the whole pipeline in one call: it filters records with opt and
// returns, in first-seen order, the accepted tags whose name occurs in buffer.
func Select(records []string, buffer string, opt Options) ([]Tag, error) {
	opt = opt.normalized()

	f, err := New(opt)
	if err != nil {
		return nil, err
	}

	set, _ := f.Scan(records)

	var out []Tag
	for t := range set.Present(buffer, opt.Limit) {
		out = append(out, t)
	}

	return out, nil
}

// Run is like Select but writes the result to w as kind/name line pairs.
func Run(w io.Writer, records []string, buffer string, opt Options) (Stats, error) {
	opt = opt.normalized()

	f, err := New(opt)
	if err != nil {
		return Stats{}, err
	}

	set, st := f.Scan(records)
	if _, err := WriteTags(w, set.Present(buffer, opt.Limit)); err != nil {
		return st, newError(KindIO, "write output", err)
	}

	return st, nil
}
