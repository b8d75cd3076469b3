package rustflags

import (
	"strconv"
	"strings"
)

// Separator delimits tokens in the encoded value, mirroring how a shell
// separates argv entries.
const Separator = '\x1f'

// ============================================================
// Grammar table
// ============================================================

// unaryFn decodes a flag from one argument token. ok is false when the
// argument does not match the flag's grammar, in which case the whole flag
// is treated as unrecognized.
type unaryFn func(arg EnvStr) (Flag, bool)

// repeatFn decodes the first recognized element of a comma separated
// multi-value argument and reports how many trailing bytes of the token
// remain for a follow-up call.
type repeatFn func(arg EnvStr) (Flag, int, bool)

type constructorKind uint8

const (
	constructNiladic constructorKind = iota
	constructUnary
	constructRepeat
	constructUnknown
)

// constructor is one grammar table entry: a flag spelling maps to an
// already-complete flag, a unary decoder, a repeatable decoder, or nothing.
type constructor struct {
	kind   constructorKind
	flag   Flag
	unary  unaryFn
	repeat repeatFn
}

func niladic(f Flag) constructor {
	return constructor{kind: constructNiladic, flag: f}
}

func unary(fn unaryFn) constructor {
	return constructor{kind: constructUnary, unary: fn}
}

func repeatable(fn repeatFn) constructor {
	return constructor{kind: constructRepeat, repeat: fn}
}

var unrecognized = constructor{kind: constructUnknown}

func lookupShort(ch rune) constructor {
	switch ch {
	case 'h':
		return niladic(Help{})
	case 'L':
		return unary(parseLibrarySearchPath)
	case 'l':
		return unary(parseLink)
	case 'g':
		return niladic(Codegen{Opt: "debuginfo", Value: "2", HasValue: true})
	case 'O':
		return niladic(Codegen{Opt: "opt-level", Value: "2", HasValue: true})
	case 'o':
		return unary(parseOut)
	case 'A':
		return unary(parseAllow)
	case 'W':
		return unary(parseWarn)
	case 'D':
		return unary(parseDeny)
	case 'F':
		return unary(parseForbid)
	case 'C':
		return unary(parseCodegen)
	case 'V':
		return niladic(Version{})
	case 'v':
		return niladic(Verbose{})
	case 'Z':
		return unary(parseZ)
	default:
		return unrecognized
	}
}

func lookupLong(name string) constructor {
	switch name {
	case "help":
		return niladic(Help{})
	case "cfg":
		return unary(parseCfg)
	case "crate-type":
		return repeatable(parseCrateType)
	case "crate-name":
		return unary(parseCrateName)
	case "edition":
		return unary(parseEdition)
	case "emit":
		return repeatable(parseEmit)
	case "print":
		return unary(parsePrint)
	case "out-dir":
		return unary(parseOutDir)
	case "explain":
		return unary(parseExplain)
	case "test":
		return niladic(Test{})
	case "target":
		return unary(parseTarget)
	case "allow":
		return unary(parseAllow)
	case "warn":
		return unary(parseWarn)
	case "force-warn":
		return unary(parseForceWarn)
	case "deny":
		return unary(parseDeny)
	case "forbid":
		return unary(parseForbid)
	case "cap-lints":
		return unary(parseCapLints)
	case "codegen":
		return unary(parseCodegen)
	case "version":
		return niladic(Version{})
	case "verbose":
		return niladic(Verbose{})
	case "extern":
		return unary(parseExtern)
	case "extern-location":
		return unary(parseExternLocation)
	case "sysroot":
		return unary(parseSysroot)
	case "error-format":
		return unary(parseErrorFormat)
	case "json":
		return unary(parseJSON)
	case "color":
		return unary(parseColor)
	case "remap-path-prefix":
		return unary(parseRemapPathPrefix)
	default:
		return unrecognized
	}
}

// ============================================================
// Per-flag decoders
// ============================================================

func parseCfg(arg EnvStr) (Flag, bool) {
	s, ok := arg.Str()
	if !ok {
		return nil, false
	}
	name := s
	value := ""
	hasValue := false
	if n, v, found := strings.Cut(s, "="); found {
		// The value must be wrapped in exactly one pair of double quotes
		// spanning the whole remainder.
		if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.Index(v[1:], `"`) == len(v)-2 {
			name, value, hasValue = n, v[1:len(v)-1], true
		} else {
			return nil, false
		}
	}
	return Cfg{Name: name, Value: value, HasValue: hasValue}, true
}

func parseLibrarySearchPath(arg EnvStr) (Flag, bool) {
	kind := LibraryKindAll
	path := arg
	if k, p, found := arg.SplitOnce('='); found {
		s, ok := k.Str()
		if !ok {
			return nil, false
		}
		switch s {
		case "dependency":
			kind = LibraryKindDependency
		case "crate":
			kind = LibraryKindCrate
		case "native":
			kind = LibraryKindNative
		case "framework":
			kind = LibraryKindFramework
		case "all":
			kind = LibraryKindAll
		default:
			return nil, false
		}
		path = p
	}
	return LibrarySearchPath{Kind: kind, Path: string(path)}, true
}

func parseLink(arg EnvStr) (Flag, bool) {
	s, ok := arg.Str()
	if !ok {
		return nil, false
	}
	var modifiers []LinkModifier
	kind := LinkKindDylib
	name := s
	if k, n, found := strings.Cut(s, "="); found {
		if modifiedKind, commaSeparated, found := strings.Cut(k, ":"); found {
			for _, modifier := range strings.Split(commaSeparated, ",") {
				if modifier == "" {
					continue
				}
				var prefix LinkModifierPrefix
				switch modifier[0] {
				case '+':
					prefix = ModifierEnable
				case '-':
					prefix = ModifierDisable
				default:
					continue
				}
				var modKind LinkModifierKind
				switch modifier[1:] {
				case "bundle":
					modKind = ModifierBundle
				case "verbatim":
					modKind = ModifierVerbatim
				case "whole-archive":
					modKind = ModifierWholeArchive
				case "as-needed":
					modKind = ModifierAsNeeded
				default:
					// Unrecognized modifiers are dropped, not fatal.
					continue
				}
				modifiers = append(modifiers, LinkModifier{Prefix: prefix, Kind: modKind})
			}
			k = modifiedKind
		}
		switch k {
		case "static":
			kind = LinkKindStatic
		case "framework":
			kind = LinkKindFramework
		case "dylib":
			kind = LinkKindDylib
		default:
			return nil, false
		}
		name = n
	}
	rename := ""
	hasRename := false
	if n, r, found := strings.Cut(name, ":"); found {
		name, rename, hasRename = n, r, true
	}
	return Link{Kind: kind, Modifiers: modifiers, Name: name, Rename: rename, HasRename: hasRename}, true
}

func parseCrateType(arg EnvStr) (Flag, int, bool) {
	for !arg.IsEmpty() {
		var first EnvStr
		if f, rest, found := arg.SplitOnce(','); found {
			first, arg = f, rest
		} else {
			first, arg = arg, ""
		}
		s, ok := first.Str()
		if !ok {
			continue
		}
		var kind CrateKind
		switch s {
		case "bin":
			kind = CrateBin
		case "lib":
			kind = CrateLib
		case "rlib":
			kind = CrateRlib
		case "dylib":
			kind = CrateDylib
		case "cdylib":
			kind = CrateCdylib
		case "staticlib":
			kind = CrateStaticlib
		case "proc-macro":
			kind = CrateProcMacro
		default:
			continue
		}
		return CrateType{Kind: kind}, arg.Len(), true
	}
	return nil, 0, false
}

func parseCrateName(arg EnvStr) (Flag, bool) {
	s, ok := arg.Str()
	if !ok {
		return nil, false
	}
	return CrateName{Name: s}, true
}

func parseEdition(arg EnvStr) (Flag, bool) {
	s, ok := arg.Str()
	if !ok {
		return nil, false
	}
	year, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return nil, false
	}
	return Edition{Year: uint16(year)}, true
}

func parseEmit(arg EnvStr) (Flag, int, bool) {
	for !arg.IsEmpty() {
		var first EnvStr
		if f, rest, found := arg.SplitOnce(','); found {
			first, arg = f, rest
		} else {
			first, arg = arg, ""
		}
		s, ok := first.Str()
		if !ok {
			continue
		}
		var kind EmitKind
		switch s {
		case "asm":
			kind = EmitAsm
		case "llvm-bc":
			kind = EmitLlvmBc
		case "llvm-ir":
			kind = EmitLlvmIr
		case "obj":
			kind = EmitObj
		case "metadata":
			kind = EmitMetadata
		case "link":
			kind = EmitLink
		case "dep-info":
			kind = EmitDepInfo
		case "mir":
			kind = EmitMir
		default:
			continue
		}
		return Emit{Kind: kind}, arg.Len(), true
	}
	return nil, 0, false
}

func parsePrint(arg EnvStr) (Flag, bool) {
	s, ok := arg.Str()
	if !ok {
		return nil, false
	}
	return Print{Info: s}, true
}

func parseOut(arg EnvStr) (Flag, bool) {
	return Out{Path: string(arg)}, true
}

func parseOutDir(arg EnvStr) (Flag, bool) {
	return OutDir{Path: string(arg)}, true
}

func parseExplain(arg EnvStr) (Flag, bool) {
	s, ok := arg.Str()
	if !ok {
		return nil, false
	}
	return Explain{Code: s}, true
}

func parseTarget(arg EnvStr) (Flag, bool) {
	s, ok := arg.Str()
	if !ok {
		return nil, false
	}
	return Target{Triple: s}, true
}

func parseAllow(arg EnvStr) (Flag, bool) {
	s, ok := arg.Str()
	if !ok {
		return nil, false
	}
	return Allow{Lint: s}, true
}

func parseWarn(arg EnvStr) (Flag, bool) {
	s, ok := arg.Str()
	if !ok {
		return nil, false
	}
	return Warn{Lint: s}, true
}

func parseForceWarn(arg EnvStr) (Flag, bool) {
	s, ok := arg.Str()
	if !ok {
		return nil, false
	}
	return ForceWarn{Lint: s}, true
}

func parseDeny(arg EnvStr) (Flag, bool) {
	s, ok := arg.Str()
	if !ok {
		return nil, false
	}
	return Deny{Lint: s}, true
}

func parseForbid(arg EnvStr) (Flag, bool) {
	s, ok := arg.Str()
	if !ok {
		return nil, false
	}
	return Forbid{Lint: s}, true
}

func parseCapLints(arg EnvStr) (Flag, bool) {
	s, ok := arg.Str()
	if !ok {
		return nil, false
	}
	var level LintLevel
	switch s {
	case "allow":
		level = LintAllow
	case "warn":
		level = LintWarn
	case "deny":
		level = LintDeny
	case "forbid":
		level = LintForbid
	default:
		return nil, false
	}
	return CapLints{Level: level}, true
}

func parseCodegen(arg EnvStr) (Flag, bool) {
	s, ok := arg.Str()
	if !ok {
		return nil, false
	}
	opt := s
	value := ""
	hasValue := false
	if o, v, found := strings.Cut(s, "="); found {
		opt, value, hasValue = o, v, true
	}
	return Codegen{Opt: opt, Value: value, HasValue: hasValue}, true
}

func parseExtern(arg EnvStr) (Flag, bool) {
	name := arg
	var path EnvStr
	hasPath := false
	if n, p, found := arg.SplitOnce('='); found {
		name, path, hasPath = n, p, true
	}
	s, ok := name.Str()
	if !ok {
		return nil, false
	}
	return Extern{Name: s, Path: string(path), HasPath: hasPath}, true
}

func parseExternLocation(arg EnvStr) (Flag, bool) {
	name, location, found := arg.SplitOnce('=')
	if !found {
		return nil, false
	}
	s, ok := name.Str()
	if !ok {
		return nil, false
	}
	return ExternLocation{Name: s, Location: string(location)}, true
}

func parseSysroot(arg EnvStr) (Flag, bool) {
	return Sysroot{Path: string(arg)}, true
}

func parseZ(arg EnvStr) (Flag, bool) {
	s, ok := arg.Str()
	if !ok {
		return nil, false
	}
	return Z{Option: s}, true
}

func parseErrorFormat(arg EnvStr) (Flag, bool) {
	s, ok := arg.Str()
	if !ok {
		return nil, false
	}
	var kind ErrorFormatKind
	switch s {
	case "human":
		kind = ErrorFormatHuman
	case "json":
		kind = ErrorFormatJSON
	case "short":
		kind = ErrorFormatShort
	default:
		return nil, false
	}
	return ErrorFormat{Kind: kind}, true
}

func parseJSON(arg EnvStr) (Flag, bool) {
	s, ok := arg.Str()
	if !ok {
		return nil, false
	}
	return JSON{Config: s}, true
}

func parseColor(arg EnvStr) (Flag, bool) {
	s, ok := arg.Str()
	if !ok {
		return nil, false
	}
	var choice ColorChoice
	switch s {
	case "auto":
		choice = ColorAuto
	case "always":
		choice = ColorAlways
	case "never":
		choice = ColorNever
	default:
		return nil, false
	}
	return Color{Choice: choice}, true
}

func parseRemapPathPrefix(arg EnvStr) (Flag, bool) {
	from, to, found := arg.SplitOnce('=')
	if !found {
		return nil, false
	}
	return RemapPathPrefix{From: string(from), To: string(to)}, true
}

// ============================================================
// Tokenizer
// ============================================================

// parse advances the iterator to the next recognized flag. Malformed input
// is absorbed silently: an unrecognized token is skipped and scanning
// resumes, so a decode failure never terminates the stream early.
func parse(f *Flags) (Flag, bool) {
	skip := false

	for f.pos < f.encoded.Len() {
		if skip {
			if i := f.encoded.SliceFrom(f.pos).Find(Separator); i >= 0 {
				// `nonflag` ...
				f.pos += i + 1
			} else {
				// `nonflag`$
				f.pos = f.encoded.Len()
			}
			skip = false
			continue
		}

		var ctor constructor
		var arg EnvStr

		switch {
		case f.repeat != nil:
			// Resume a partially consumed comma separated value: the
			// previously reported remaining length is exactly the next
			// argument.
			arg = f.encoded.Slice(f.pos, f.pos+f.repeatLen)
			f.pos += f.repeatLen
			ctor = repeatable(f.repeat)
			f.repeat = nil
			f.repeatLen = 0

		case f.short:
			ch, size, valid := f.encoded.SliceFrom(f.pos).FirstChar()
			if valid {
				f.pos += size
				if ch == Separator {
					f.short = false
					continue
				}
			} else {
				ch = 0
			}
			c := lookupShort(ch)
			switch c.kind {
			case constructNiladic:
				return c.flag, true
			case constructUnknown:
				// An unrecognized character aborts the bundle, not the
				// stream: the rest of the token is skipped.
				f.short = false
				skip = true
				continue
			}
			f.short = false
			if f.pos == f.encoded.Len() {
				return nil, false
			}
			if f.encoded.SliceFrom(f.pos).StartsWith(Separator) {
				// `-X` `arg`
				f.pos++
			}
			if i := f.encoded.SliceFrom(f.pos).Find(Separator); i >= 0 {
				// `-Xarg` ...
				arg = f.encoded.Slice(f.pos, f.pos+i)
				f.pos += i + 1
			} else {
				// `-Xarg`$
				arg = f.encoded.SliceFrom(f.pos)
				f.pos = f.encoded.Len()
			}
			ctor = c

		case f.encoded.SliceFrom(f.pos).StartsWith('-'):
			ch, size, valid := f.encoded.SliceFrom(f.pos + 1).FirstChar()
			switch {
			case size == 0:
				// `-`$
				f.pos++
				continue
			case valid && ch == Separator:
				// `-` ...
				f.pos += 2
				continue
			case valid && ch == '-':
				var spelling EnvStr
				switch i := f.encoded.SliceFrom(f.pos + 2).Find(Separator); {
				case i == 0:
					// `--` terminates all parsing.
					f.pos = f.encoded.Len()
					continue
				case i > 0:
					spelling = f.encoded.Slice(f.pos+2, f.pos+2+i)
					f.pos += i + 3
				default:
					spelling = f.encoded.SliceFrom(f.pos + 2)
					f.pos = f.encoded.Len()
				}
				name := spelling
				var embedded EnvStr
				hasEmbedded := false
				if n, v, found := spelling.SplitOnce('='); found {
					name, embedded, hasEmbedded = n, v, true
				}
				nameStr, ok := name.Str()
				if !ok {
					continue
				}
				c := lookupLong(nameStr)
				switch {
				case c.kind == constructNiladic && !hasEmbedded:
					// `--flag`
					return c.flag, true
				case c.kind == constructNiladic || c.kind == constructUnknown:
					// Niladic with an embedded value is mismatched arity;
					// both are dropped.
					continue
				}
				if hasEmbedded {
					// `--opt=arg`
					arg = embedded
				} else if i := f.encoded.SliceFrom(f.pos).Find(Separator); i >= 0 {
					// `--opt` `arg` ...
					arg = f.encoded.Slice(f.pos, f.pos+i)
					f.pos += i + 1
				} else {
					// `--opt` `arg`$
					arg = f.encoded.SliceFrom(f.pos)
					f.pos = f.encoded.Len()
				}
				ctor = c
			default:
				// `-X` enters short-bundle mode at X.
				f.pos++
				f.short = true
				continue
			}

		default:
			// Positional argument: never produces a flag.
			skip = true
			continue
		}

		switch ctor.kind {
		case constructUnary:
			if flag, ok := ctor.unary(arg); ok {
				return flag, true
			}
		case constructRepeat:
			if flag, remaining, ok := ctor.repeat(arg); ok {
				if remaining > 0 {
					// Rewind to the start of the unconsumed suffix. The
					// extra step re-consumes the delimiter when the cursor
					// currently sits just past one, so it is not attributed
					// to the next token twice.
					rewind := remaining
					if f.encoded.SliceTo(f.pos).EndsWith(Separator) {
						rewind++
					}
					f.pos -= rewind
					f.repeat = ctor.repeat
					f.repeatLen = remaining
				}
				return flag, true
			}
		}
	}

	return nil, false
}
