package neotags

import (
	"iter"

	"github.com/cespare/xxhash/v2"
)

// Tag is an accepted tag entry. Two tags are equal when both kind and name match.
type Tag struct {
	Name string
	Kind byte
}

// String returns the kind character followed by the name.
func (t Tag) String() string {
	return string(t.Kind) + t.Name
}

// ResultSet is an insertion-ordered, duplicate-free set of tags.
// Lookups go through a 64-bit hash index; colliding buckets are verified
// by exact comparison.
type ResultSet struct {
	index map[uint64][]int
	tags  []Tag
}

// NewResultSet returns an empty set sized for roughly n tags.
func NewResultSet(n int) *ResultSet {
	if n < 0 {
		n = 0
	}

	return &ResultSet{
		index: make(map[uint64][]int, n),
		tags:  make([]Tag, 0, n),
	}
}

func key(t Tag) uint64 {
	return xxhash.Sum64String(t.String())
}

func (s *ResultSet) find(h uint64, t Tag) bool {
	for _, i := range s.index[h] {
		if s.tags[i] == t {
			return true
		}
	}

	return false
}

// Contains reports whether t is already in the set.
func (s *ResultSet) Contains(t Tag) bool {
	return s.find(key(t), t)
}

// Add inserts t unless an equal tag is present. It reports whether t was added.
func (s *ResultSet) Add(t Tag) bool {
	h := key(t)
	if s.find(h, t) {
		return false
	}

	s.index[h] = append(s.index[h], len(s.tags))
	s.tags = append(s.tags, t)

	return true
}

// Len returns the number of tags in the set.
func (s *ResultSet) Len() int {
	return len(s.tags)
}

// Tags returns a copy of the tags in insertion order.
func (s *ResultSet) Tags() []Tag {
	return append([]Tag(nil), s.tags...)
}

// All yields tags in insertion order.
func (s *ResultSet) All() iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		for _, t := range s.tags {
			if !yield(t) {
				return
			}
		}
	}
}
