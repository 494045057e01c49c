package neotags

// Reason is the outcome of running one record through the pipeline.
type Reason uint8

const (
	// Accepted means the tag was added to the result set.
	Accepted Reason = iota
	// RejectComment means the record was empty or a '!' comment.
	RejectComment
	// RejectNoMatch means the extraction pattern did not match.
	RejectNoMatch
	// RejectOrder means the kind is not in the order spec.
	RejectOrder
	// RejectLang means the declared language is not acceptable.
	RejectLang
	// RejectSkip means the name is in the skip list.
	RejectSkip
	// RejectDuplicate means an equal tag was accepted earlier.
	RejectDuplicate

	numReasons
)

// String returns a stable textual representation for Reason.
func (r Reason) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case RejectComment:
		return "comment"
	case RejectNoMatch:
		return "no match"
	case RejectOrder:
		return "not in order"
	case RejectLang:
		return "wrong language"
	case RejectSkip:
		return "in skip list"
	case RejectDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// Stats counts records per Reason.
type Stats struct {
	counts [numReasons]int
}

func (s *Stats) inc(r Reason) {
	if r < numReasons {
		s.counts[r]++
	}
}

// Count returns how many records ended with r.
func (s Stats) Count(r Reason) int {
	if r >= numReasons {
		return 0
	}

	return s.counts[r]
}

// Total returns the number of records seen.
func (s Stats) Total() int {
	n := 0
	for _, c := range s.counts {
		n += c
	}

	return n
}

// Add merges o into s.
func (s *Stats) Add(o Stats) {
	for i, c := range o.counts {
		s.counts[i] += c
	}
}
