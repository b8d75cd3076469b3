package rustflags

import (
	"strconv"
	"strings"
)

// Tokens renders one flag back to the raw argument tokens a process
// launcher would pass on a command line. It is the exact inverse of
// decoding: for every flag f produced by this package, decoding Tokens(f)
// joined with the separator yields f again. Path-bearing fields are
// rendered raw so non-UTF-8 paths survive the round trip unchanged.
func Tokens(flag Flag) []string {
	switch f := flag.(type) {
	case Help:
		return []string{"--help"}

	case Cfg:
		if f.HasValue {
			return []string{"--cfg", f.Name + `="` + f.Value + `"`}
		}
		return []string{"--cfg", f.Name}

	case LibrarySearchPath:
		if f.Kind == LibraryKindAll {
			return []string{"-L", f.Path}
		}
		return []string{"-L", f.Kind.String() + "=" + f.Path}

	case Link:
		var b strings.Builder
		// The default kind is suppressed, except when modifiers are
		// present: the modifier list attaches to an explicit kind.
		if f.Kind != LinkKindDylib || len(f.Modifiers) > 0 {
			b.WriteString(f.Kind.String())
		}
		for i, m := range f.Modifiers {
			if i == 0 {
				b.WriteByte(':')
			} else {
				b.WriteByte(',')
			}
			b.WriteString(m.String())
		}
		if b.Len() > 0 {
			b.WriteByte('=')
		}
		b.WriteString(f.Name)
		if f.HasRename {
			b.WriteByte(':')
			b.WriteString(f.Rename)
		}
		return []string{"-l", b.String()}

	case CrateType:
		return []string{"--crate-type", f.Kind.String()}

	case CrateName:
		return []string{"--crate-name", f.Name}

	case Edition:
		return []string{"--edition", strconv.Itoa(int(f.Year))}

	case Emit:
		return []string{"--emit", f.Kind.String()}

	case Print:
		return []string{"--print", f.Info}

	case Out:
		return []string{"-o", f.Path}

	case OutDir:
		return []string{"--out-dir", f.Path}

	case Explain:
		return []string{"--explain", f.Code}

	case Test:
		return []string{"--test"}

	case Target:
		return []string{"--target", f.Triple}

	case Allow:
		return []string{"--allow", f.Lint}

	case Warn:
		return []string{"--warn", f.Lint}

	case ForceWarn:
		return []string{"--force-warn", f.Lint}

	case Deny:
		return []string{"--deny", f.Lint}

	case Forbid:
		return []string{"--forbid", f.Lint}

	case CapLints:
		return []string{"--cap-lints", f.Level.String()}

	case Codegen:
		if f.HasValue {
			return []string{"-C", f.Opt + "=" + f.Value}
		}
		return []string{"-C", f.Opt}

	case Version:
		return []string{"--version"}

	case Verbose:
		return []string{"--verbose"}

	case Extern:
		if f.HasPath {
			return []string{"--extern", f.Name + "=" + f.Path}
		}
		return []string{"--extern", f.Name}

	case ExternLocation:
		return []string{"--extern-location", f.Name + "=" + f.Location}

	case Sysroot:
		return []string{"--sysroot", f.Path}

	case Z:
		return []string{"-Z", f.Option}

	case ErrorFormat:
		return []string{"--error-format", f.Kind.String()}

	case JSON:
		return []string{"--json", f.Config}

	case Color:
		return []string{"--color", f.Choice.String()}

	case RemapPathPrefix:
		return []string{"--remap-path-prefix", f.From + "=" + f.To}
	}
	return nil
}

// Encode joins the rendered tokens of a flag sequence back into the
// encoded environment-variable form.
func Encode(flags []Flag) string {
	var tokens []string
	for _, f := range flags {
		tokens = append(tokens, Tokens(f)...)
	}
	return strings.Join(tokens, string(rune(Separator)))
}
