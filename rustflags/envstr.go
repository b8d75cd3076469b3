package rustflags

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// EnvStr is an immutable view over platform text that is usually, but not
// guaranteed to be, valid UTF-8. Environment variables can carry arbitrary
// byte runs (non-UTF-8 filesystem paths in particular), so every operation
// here works on bytes while keeping character boundaries intact: searches
// match complete encoded characters only, and slicing asserts that both
// endpoints are boundary-aligned. Centralizing the boundary checks in this
// type lets the rest of the codec slice freely without re-deriving them.
type EnvStr string

// Len returns the length in bytes.
func (s EnvStr) Len() int {
	return len(s)
}

// IsEmpty reports whether the view has no bytes.
func (s EnvStr) IsEmpty() bool {
	return len(s) == 0
}

// Find returns the byte offset of the first occurrence of ch, or -1.
// The search encodes ch to its UTF-8 byte pattern and scans byte-wise;
// because no valid encoding is a substring of another, a match never lands
// inside a different multi-byte character.
func (s EnvStr) Find(ch rune) int {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], ch)
	return strings.Index(string(s), string(buf[:n]))
}

// StartsWith reports whether the view begins with ch.
func (s EnvStr) StartsWith(ch rune) bool {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], ch)
	return strings.HasPrefix(string(s), string(buf[:n]))
}

// EndsWith reports whether the view ends with ch.
func (s EnvStr) EndsWith(ch rune) bool {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], ch)
	return strings.HasSuffix(string(s), string(buf[:n]))
}

// FirstChar decodes the first character of the view.
//
// For a valid leading character it returns the character, its encoded size,
// and valid=true. For a leading byte run that is not valid UTF-8 it returns
// valid=false with size 1; for an empty view, valid=false with size 0.
func (s EnvStr) FirstChar() (ch rune, size int, valid bool) {
	ch, size = utf8.DecodeRuneInString(string(s))
	if ch == utf8.RuneError && size <= 1 {
		return 0, size, false
	}
	return ch, size, true
}

// SplitOnce splits the view around the first occurrence of ch. found is
// false when ch does not occur, in which case both halves are empty.
func (s EnvStr) SplitOnce(ch rune) (before, after EnvStr, found bool) {
	i := s.Find(ch)
	if i < 0 {
		return "", "", false
	}
	return s.Slice(0, i), s.SliceFrom(i + utf8.RuneLen(ch)), true
}

// Str returns the view as validated text. ok is false unless the whole
// view is valid UTF-8; callers that need text simply decline to recognize
// the value rather than erroring.
func (s EnvStr) Str() (string, bool) {
	if !utf8.ValidString(string(s)) {
		return "", false
	}
	return string(s), true
}

// Slice returns the byte range [start, end). Both endpoints must be
// character boundaries; a misaligned index is a bug in the codec, not in
// the input, and panics rather than risk silently misattributing bytes.
func (s EnvStr) Slice(start, end int) EnvStr {
	s.checkBoundary(start)
	s.checkBoundary(end)
	return s[start:end]
}

// SliceFrom returns the byte range [start, Len).
func (s EnvStr) SliceFrom(start int) EnvStr {
	return s.Slice(start, len(s))
}

// SliceTo returns the byte range [0, end).
func (s EnvStr) SliceTo(end int) EnvStr {
	return s.Slice(0, end)
}

// checkBoundary panics unless i is character-boundary aligned: either a
// buffer edge, or a position where a window of at most utf8.UTFMax bytes on
// one side decodes as valid text.
func (s EnvStr) checkBoundary(i int) {
	if i == 0 || i == len(s) {
		return
	}
	if i < 0 || i > len(s) {
		panic(fmt.Sprintf("rustflags: index %d out of range for %d-byte view", i, len(s)))
	}
	for w := 1; w <= utf8.UTFMax; w++ {
		if i+w <= len(s) && utf8.ValidString(string(s[i:i+w])) {
			return
		}
		if i-w >= 0 && utf8.ValidString(string(s[i-w:i])) {
			return
		}
	}
	panic(fmt.Sprintf("rustflags: index %d is not a character boundary", i))
}
