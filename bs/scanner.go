package bs

// Scanner scans a growing Sequence for the first occurrence of any of a set
// of delimiters, without ever rescanning bytes it has already ruled out.
// Ties (two delimiters both matching at the same position) are broken in
// favor of the earlier entry in Delims.
//
// A Scanner is used like this:
//
//	sc := NewScanner(delims)
//	at, which, ok := sc.Scan(seq)
//	for !ok {
//		seq = seq.Append(<next chunk>)
//		at, which, ok = sc.Scan(seq)
//	}
//
// Each call to Scan must be given the full accumulated Sequence (the one
// passed to the previous call, plus whatever was appended to it); Scan
// tracks internally how much of that Sequence it has already ruled out and
// only re-examines the tail window that could still contain the start of a
// match.
type Scanner struct {
	Delims [][]byte

	maxLen int // longest delimiter, computed by NewScanner
	safe   int // prefix of the last-seen Sequence known to contain no match start
}

// NewScanner creates a Scanner for the given delimiter set. The set must be
// non-empty and every delimiter must be non-empty.
func NewScanner(delims [][]byte) *Scanner {
	s := &Scanner{Delims: delims}
	for _, d := range delims {
		if len(d) > s.maxLen {
			s.maxLen = len(d)
		}
	}
	return s
}

// Scan looks for the first occurrence of any delimiter in seq. On a match it
// returns the byte offset at which the winning delimiter begins, the index
// of that delimiter within s.Delims, and ok=true. If no delimiter occurs
// (yet) in seq, Scan returns ok=false; the caller should append more data to
// seq and call Scan again. Scan never re-examines a byte position it has
// already established cannot start a match, across repeated calls against a
// monotonically growing seq.
func (s *Scanner) Scan(seq Sequence) (at int, which int, ok bool) {
	n := seq.Len()
	start := s.safe
	if start > n {
		start = n
	}
	for i := start; i < n; i++ {
		for di, d := range s.Delims {
			if matchesAt(seq, i, d) {
				return i, di, true
			}
		}
	}
	// Nothing found. Everything before the tail window of length maxLen-1 is
	// now provably safe: any delimiter starting there would have been found
	// by the loop above, since the loop runs to n (the full Sequence length)
	// regardless of whether individual delimiters are still incomplete at
	// the very end.
	s.safe = n - (s.maxLen - 1)
	if s.safe < 0 {
		s.safe = 0
	}
	return 0, 0, false
}

// matchesAt reports whether d occurs in seq starting at offset i.
func matchesAt(seq Sequence, i int, d []byte) bool {
	if i+len(d) > seq.Len() {
		return false
	}
	for j, want := range d {
		if seq.At(i+j) != want {
			return false
		}
	}
	return true
}
