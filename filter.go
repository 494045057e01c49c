package neotags

import (
	"regexp"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Candidate is a tag extracted from one record, before any policy checks.
type Candidate struct {
	Name string
	Lang string
	Kind byte
}

// Tag returns the (kind, name) form stored in a ResultSet.
func (c Candidate) Tag() Tag {
	return Tag{Kind: c.Kind, Name: c.Name}
}

// Filter is the compiled form of Options. It is not safe for concurrent use
// because Scan mutates the ResultSet it fills.
type Filter struct {
	re    *regexp.Regexp
	log   *zap.Logger
	skip  SkipList
	lang  string
	order OrderSpec
	equiv EquivalenceTable
}

// New compiles the extraction pattern for opt.
func New(opt Options) (*Filter, error) {
	opt = opt.normalized()

	re, err := BuildPattern(opt.Lang, opt.Equiv)
	if err != nil {
		return nil, err
	}

	return &Filter{
		re:    re,
		log:   opt.Logger,
		skip:  NewSkipList(opt.Skip),
		lang:  opt.Lang,
		order: opt.Order,
		equiv: opt.Equiv,
	}, nil
}

// Pattern returns the compiled extraction pattern.
func (f *Filter) Pattern() *regexp.Regexp {
	return f.re
}

// Parse extracts a candidate from a raw record.
// Comment ('!') and empty records yield RejectComment; records the
// pattern does not match yield RejectNoMatch.
func (f *Filter) Parse(record string) (Candidate, Reason) {
	if record == "" || record[0] == '!' {
		return Candidate{}, RejectComment
	}

	m := f.re.FindStringSubmatch(record)
	if m == nil || m[1] == "" || m[2] == "" {
		return Candidate{}, RejectNoMatch
	}

	return Candidate{Name: m[1], Kind: m[2][0], Lang: m[3]}, Accepted
}

// Check applies order, language, skip and duplicate checks in that order.
// Duplicate detection runs last so rejected candidates never reach set.
func (f *Filter) Check(c Candidate, set *ResultSet) Reason {
	switch {
	case !f.order.Has(c.Kind):
		return RejectOrder
	case !LangAccepted(c.Lang, f.lang, f.equiv):
		return RejectLang
	case f.skip.Has(c.Name):
		return RejectSkip
	case set.Contains(c.Tag()):
		return RejectDuplicate
	default:
		return Accepted
	}
}

// Scan runs every record through the pipeline and returns the accepted set.
func (f *Filter) Scan(records []string) (*ResultSet, Stats) {
	set := NewResultSet(len(records) / 4)
	return set, f.ScanInto(set, records)
}

// ScanInto feeds records into an existing set, so several tag sources can
// share one duplicate index.
func (f *Filter) ScanInto(set *ResultSet, records []string) Stats {
	var st Stats
	for _, rec := range records {
		st.inc(f.scanOne(set, rec))
	}

	return st
}

func (f *Filter) scanOne(set *ResultSet, rec string) Reason {
	c, r := f.Parse(rec)
	if r != Accepted {
		return r
	}

	r = f.Check(c, set)
	if r == Accepted {
		set.Add(c.Tag())
	}

	if ce := f.log.Check(zapcore.DebugLevel, "tag "+r.String()); ce != nil {
		ce.Write(
			zap.String("name", c.Name),
			zap.String("kind", string(c.Kind)),
			zap.String("language", c.Lang),
		)
	}

	return r
}
