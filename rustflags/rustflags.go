package rustflags

import "os"

// EnvVar is the environment variable Cargo uses to hand build scripts the
// merged set of rustc flags (Cargo 1.55+). CARGO_ENCODED_RUSTDOCFLAGS uses
// the same format and can be decoded with FromEncoded.
const EnvVar = "CARGO_ENCODED_RUSTFLAGS"

// Flags is a pull iterator over the flags of one encoded value. It owns the
// encoded buffer and a cursor; a single instance is not safe for concurrent
// use, but independent instances over the same input do not interact.
type Flags struct {
	encoded EnvStr
	pos     int
	short   bool

	// Suspended repeatable decoder for a partially consumed comma
	// separated value, with the byte length still unconsumed.
	repeat    repeatFn
	repeatLen int
}

// FromEnv parses flags from the CARGO_ENCODED_RUSTFLAGS environment
// variable. An absent variable decodes to zero flags.
func FromEnv() *Flags {
	return FromEncoded(os.Getenv(EnvVar))
}

// FromEncoded parses flags from a string whose tokens are separated with
// the ASCII unit separator ('\x1f').
func FromEncoded(encoded string) *Flags {
	return &Flags{encoded: EnvStr(encoded)}
}

// Next produces the next flag, or ok=false when the stream is exhausted.
// Unrecognized tokens are skipped, never surfaced as errors.
func (f *Flags) Next() (Flag, bool) {
	return parse(f)
}

// All is an iter.Seq adapter over the remaining flags, so the iterator
// works directly with a range statement.
func (f *Flags) All(yield func(Flag) bool) {
	for {
		flag, ok := f.Next()
		if !ok {
			return
		}
		if !yield(flag) {
			return
		}
	}
}

// Collect drains the iterator into a slice.
func (f *Flags) Collect() []Flag {
	var flags []Flag
	for flag, ok := f.Next(); ok; flag, ok = f.Next() {
		flags = append(flags, flag)
	}
	return flags
}
