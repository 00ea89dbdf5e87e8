package wordlist

import "unicode/utf8"

// lengthSet is an insertion-ordered string set that only admits strings
// whose rune count lies within [min, max].
type lengthSet struct {
	min, max int
	index    map[string]struct{}
	words    []string
}

func newLengthSet(min, max int) *lengthSet {
	return &lengthSet{
		min:   min,
		max:   max,
		index: make(map[string]struct{}, 1024),
	}
}

// add is the only way into the set.
func (s *lengthSet) add(w string) {
	// A string can't have more runes than bytes.
	if len(w) < s.min {
		return
	}
	if n := utf8.RuneCountInString(w); n < s.min || n > s.max {
		return
	}
	if _, ok := s.index[w]; ok {
		return
	}
	s.index[w] = struct{}{}
	s.words = append(s.words, w)
}

// snapshot returns the words inserted so far. The set is append-only, so the
// returned slice never changes while later stages keep adding.
func (s *lengthSet) snapshot() []string {
	n := len(s.words)
	return s.words[:n:n]
}

