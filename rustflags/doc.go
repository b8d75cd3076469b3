// Package rustflags parses CARGO_ENCODED_RUSTFLAGS.
//
// Cargo hands build scripts a single environment variable that merges every
// source of flags affecting its rustc invocations:
//   - Flags passed via the RUSTFLAGS environment variable,
//   - Cargo config entries under `target.<triple>.rustflags`,
//     `target.<cfg>.rustflags` and `build.rustflags`, including the
//     project-specific config file and the one in CARGO_HOME.
//
// A build script that needs to run rustc itself, or characterize aspects of
// the upcoming rustc invocation, needs these flags.
//
// # Encoding
//
// The encoded value is a flat argv: tokens separated by the ASCII unit
// separator (0x1F). The value is platform text and is allowed to contain
// byte runs that are not valid UTF-8 (filesystem paths in -L, --sysroot,
// --extern and friends). Decoding never fails on such input; it only
// declines to recognize flags whose textual parts are not UTF-8.
//
// # Decoding
//
//	for flag := range rustflags.FromEnv().All {
//		if z, ok := flag.(rustflags.Z); ok && z.Option == "sanitizer=address" {
//			// build with sanitizers enabled
//		}
//	}
//
// Decoding is pull-based and tolerant: tokens that are not recognized as a
// flag, and flag arguments that do not match the flag's grammar, are skipped
// silently. The flag stream may come from a newer or older toolchain than
// this package understands; an unknown flag is never an error.
//
// # Rendering
//
// Tokens is the exact inverse of decoding: it maps one structured flag back
// to the raw argv tokens a process launcher would pass on a command line.
// For every recognized flag f, decoding Tokens(f) yields f again.
package rustflags
