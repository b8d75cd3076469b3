package rustflags

// Flag is one flag recognized by rustc. It is a closed union: every variant
// is an immutable value defined in this file, and equality is structural.
// A decoded Flag is fully owned by the caller; the iterator that produced
// it keeps no reference.
type Flag interface {
	isFlag()
}

// Help is `-h`, `--help`. Display help message.
type Help struct{}

// Cfg is `--cfg SPEC`. Configure the compilation environment.
type Cfg struct {
	Name     string
	Value    string
	HasValue bool
}

// LibrarySearchPath is `-L [KIND=]PATH`. Add a directory to the library
// search path. Path is raw platform text and may not be valid UTF-8.
type LibrarySearchPath struct {
	Kind LibraryKind
	Path string
}

// Link is `-l [KIND[:MODIFIERS]=]NAME[:RENAME]`. Link the generated
// crate(s) to the specified native library NAME. Optional comma separated
// MODIFIERS may be specified each with a prefix of either '+' to enable or
// '-' to disable.
type Link struct {
	Kind      LinkKind
	Modifiers []LinkModifier
	Name      string
	Rename    string
	HasRename bool
}

// CrateType is `--crate-type [bin|lib|rlib|dylib|cdylib|staticlib|proc-macro]`.
// One element of the comma separated list of crate types for the compiler
// to emit; a list decodes to one CrateType flag per recognized element.
type CrateType struct {
	Kind CrateKind
}

// CrateName is `--crate-name NAME`. Specify the name of the crate being built.
type CrateName struct {
	Name string
}

// Edition is `--edition 2015|2018|2021`. Specify which edition of the
// compiler to use when compiling code.
type Edition struct {
	Year uint16
}

// Emit is `--emit [asm|llvm-bc|llvm-ir|obj|metadata|link|dep-info|mir]`.
// One element of the comma separated list of output types for the compiler
// to emit; a list decodes to one Emit flag per recognized element.
type Emit struct {
	Kind EmitKind
}

// Print is `--print INFO`. Compiler information to print on stdout.
type Print struct {
	Info string
}

// Out is `-o FILENAME`. Write output to the given filename.
type Out struct {
	Path string
}

// OutDir is `--out-dir DIR`. Write output to a compiler-chosen filename
// in the given directory.
type OutDir struct {
	Path string
}

// Explain is `--explain OPT`. Provide a detailed explanation of an error
// message.
type Explain struct {
	Code string
}

// Test is `--test`. Build a test harness.
type Test struct{}

// Target is `--target TARGET`. Target triple for which the code is compiled.
type Target struct {
	Triple string
}

// Allow is `-A`, `--allow LINT`. Set lint allowed.
type Allow struct {
	Lint string
}

// Warn is `-W`, `--warn LINT`. Set lint warnings.
type Warn struct {
	Lint string
}

// ForceWarn is `--force-warn LINT`. Set lint force-warn.
type ForceWarn struct {
	Lint string
}

// Deny is `-D`, `--deny LINT`. Set lint denied.
type Deny struct {
	Lint string
}

// Forbid is `-F`, `--forbid LINT`. Set lint forbidden.
type Forbid struct {
	Lint string
}

// CapLints is `--cap-lints LEVEL`. Set the most restrictive lint level.
// More restrictive lints are capped at this level.
type CapLints struct {
	Level LintLevel
}

// Codegen is `-C`, `--codegen OPT[=VALUE]`. Set a codegen option.
type Codegen struct {
	Opt      string
	Value    string
	HasValue bool
}

// Version is `-V`, `--version`. Print version info and exit.
type Version struct{}

// Verbose is `-v`, `--verbose`. Use verbose output.
type Verbose struct{}

// Extern is `--extern NAME[=PATH]`. Specify where an external rust library
// is located.
type Extern struct {
	Name    string
	Path    string
	HasPath bool
}

// ExternLocation is `--extern-location NAME=LOCATION`. Location where an
// external crate dependency is specified.
type ExternLocation struct {
	Name     string
	Location string
}

// Sysroot is `--sysroot PATH`. Override the system root.
type Sysroot struct {
	Path string
}

// Z is `-Z FLAG`. Set internal debugging options.
type Z struct {
	Option string
}

// ErrorFormat is `--error-format human|json|short`. How errors and other
// messages are produced.
type ErrorFormat struct {
	Kind ErrorFormatKind
}

// JSON is `--json CONFIG`. Configure the JSON output of the compiler.
type JSON struct {
	Config string
}

// Color is `--color auto|always|never`. Configure coloring of output.
type Color struct {
	Choice ColorChoice
}

// RemapPathPrefix is `--remap-path-prefix FROM=TO`. Remap source names in
// all output (compiler messages and output files).
type RemapPathPrefix struct {
	From string
	To   string
}

func (Help) isFlag()              {}
func (Cfg) isFlag()               {}
func (LibrarySearchPath) isFlag() {}
func (Link) isFlag()              {}
func (CrateType) isFlag()         {}
func (CrateName) isFlag()         {}
func (Edition) isFlag()           {}
func (Emit) isFlag()              {}
func (Print) isFlag()             {}
func (Out) isFlag()               {}
func (OutDir) isFlag()            {}
func (Explain) isFlag()           {}
func (Test) isFlag()              {}
func (Target) isFlag()            {}
func (Allow) isFlag()             {}
func (Warn) isFlag()              {}
func (ForceWarn) isFlag()         {}
func (Deny) isFlag()              {}
func (Forbid) isFlag()            {}
func (CapLints) isFlag()          {}
func (Codegen) isFlag()           {}
func (Version) isFlag()           {}
func (Verbose) isFlag()           {}
func (Extern) isFlag()            {}
func (ExternLocation) isFlag()    {}
func (Sysroot) isFlag()           {}
func (Z) isFlag()                 {}
func (ErrorFormat) isFlag()       {}
func (JSON) isFlag()              {}
func (Color) isFlag()             {}
func (RemapPathPrefix) isFlag()   {}

// ============================================================
// Argument vocabularies
// ============================================================

// LibraryKind is the KIND prefix of `-L`.
type LibraryKind uint8

const (
	// LibraryKindAll is `all` (the default).
	LibraryKindAll LibraryKind = iota
	// LibraryKindDependency is `dependency`.
	LibraryKindDependency
	// LibraryKindCrate is `crate`.
	LibraryKindCrate
	// LibraryKindNative is `native`.
	LibraryKindNative
	// LibraryKindFramework is `framework`.
	LibraryKindFramework
)

// String returns the kind spelling.
func (k LibraryKind) String() string {
	switch k {
	case LibraryKindDependency:
		return "dependency"
	case LibraryKindCrate:
		return "crate"
	case LibraryKindNative:
		return "native"
	case LibraryKindFramework:
		return "framework"
	case LibraryKindAll:
		return "all"
	default:
		return "unknown"
	}
}

// LinkKind is the KIND prefix of `-l`.
type LinkKind uint8

const (
	// LinkKindDylib is `dylib` (the default).
	LinkKindDylib LinkKind = iota
	// LinkKindStatic is `static`.
	LinkKindStatic
	// LinkKindFramework is `framework`.
	LinkKindFramework
)

// String returns the kind spelling.
func (k LinkKind) String() string {
	switch k {
	case LinkKindStatic:
		return "static"
	case LinkKindFramework:
		return "framework"
	case LinkKindDylib:
		return "dylib"
	default:
		return "unknown"
	}
}

// LinkModifierPrefix enables or disables one `-l` modifier.
type LinkModifierPrefix uint8

const (
	// ModifierEnable is `+`.
	ModifierEnable LinkModifierPrefix = iota
	// ModifierDisable is `-`.
	ModifierDisable
)

// String returns the prefix character.
func (p LinkModifierPrefix) String() string {
	switch p {
	case ModifierEnable:
		return "+"
	case ModifierDisable:
		return "-"
	default:
		return "unknown"
	}
}

// LinkModifierKind is one `-l` modifier name.
type LinkModifierKind uint8

const (
	// ModifierBundle is `bundle`.
	ModifierBundle LinkModifierKind = iota
	// ModifierVerbatim is `verbatim`.
	ModifierVerbatim
	// ModifierWholeArchive is `whole-archive`.
	ModifierWholeArchive
	// ModifierAsNeeded is `as-needed`.
	ModifierAsNeeded
)

// String returns the modifier spelling.
func (m LinkModifierKind) String() string {
	switch m {
	case ModifierBundle:
		return "bundle"
	case ModifierVerbatim:
		return "verbatim"
	case ModifierWholeArchive:
		return "whole-archive"
	case ModifierAsNeeded:
		return "as-needed"
	default:
		return "unknown"
	}
}

// LinkModifier is one (prefix, modifier) pair of `-l`.
type LinkModifier struct {
	Prefix LinkModifierPrefix
	Kind   LinkModifierKind
}

// String returns the modifier as it appears on the command line, e.g. "+bundle".
func (m LinkModifier) String() string {
	return m.Prefix.String() + m.Kind.String()
}

// CrateKind is the argument vocabulary of `--crate-type`.
type CrateKind uint8

const (
	// CrateBin is `bin`.
	CrateBin CrateKind = iota
	// CrateLib is `lib`.
	CrateLib
	// CrateRlib is `rlib`.
	CrateRlib
	// CrateDylib is `dylib`.
	CrateDylib
	// CrateCdylib is `cdylib`.
	CrateCdylib
	// CrateStaticlib is `staticlib`.
	CrateStaticlib
	// CrateProcMacro is `proc-macro`.
	CrateProcMacro
)

// String returns the crate type spelling.
func (k CrateKind) String() string {
	switch k {
	case CrateBin:
		return "bin"
	case CrateLib:
		return "lib"
	case CrateRlib:
		return "rlib"
	case CrateDylib:
		return "dylib"
	case CrateCdylib:
		return "cdylib"
	case CrateStaticlib:
		return "staticlib"
	case CrateProcMacro:
		return "proc-macro"
	default:
		return "unknown"
	}
}

// EmitKind is the argument vocabulary of `--emit`.
type EmitKind uint8

const (
	// EmitAsm is `asm`.
	EmitAsm EmitKind = iota
	// EmitLlvmBc is `llvm-bc`.
	EmitLlvmBc
	// EmitLlvmIr is `llvm-ir`.
	EmitLlvmIr
	// EmitObj is `obj`.
	EmitObj
	// EmitMetadata is `metadata`.
	EmitMetadata
	// EmitLink is `link`.
	EmitLink
	// EmitDepInfo is `dep-info`.
	EmitDepInfo
	// EmitMir is `mir`.
	EmitMir
)

// String returns the emit kind spelling.
func (k EmitKind) String() string {
	switch k {
	case EmitAsm:
		return "asm"
	case EmitLlvmBc:
		return "llvm-bc"
	case EmitLlvmIr:
		return "llvm-ir"
	case EmitObj:
		return "obj"
	case EmitMetadata:
		return "metadata"
	case EmitLink:
		return "link"
	case EmitDepInfo:
		return "dep-info"
	case EmitMir:
		return "mir"
	default:
		return "unknown"
	}
}

// LintLevel is the argument vocabulary of `--cap-lints`.
type LintLevel uint8

const (
	// LintAllow is `allow`.
	LintAllow LintLevel = iota
	// LintWarn is `warn`.
	LintWarn
	// LintDeny is `deny`.
	LintDeny
	// LintForbid is `forbid`.
	LintForbid
)

// String returns the lint level spelling.
func (l LintLevel) String() string {
	switch l {
	case LintAllow:
		return "allow"
	case LintWarn:
		return "warn"
	case LintDeny:
		return "deny"
	case LintForbid:
		return "forbid"
	default:
		return "unknown"
	}
}

// ErrorFormatKind is the argument vocabulary of `--error-format`.
type ErrorFormatKind uint8

const (
	// ErrorFormatHuman is `human`.
	ErrorFormatHuman ErrorFormatKind = iota
	// ErrorFormatJSON is `json`.
	ErrorFormatJSON
	// ErrorFormatShort is `short`.
	ErrorFormatShort
)

// String returns the error format spelling.
func (k ErrorFormatKind) String() string {
	switch k {
	case ErrorFormatHuman:
		return "human"
	case ErrorFormatJSON:
		return "json"
	case ErrorFormatShort:
		return "short"
	default:
		return "unknown"
	}
}

// ColorChoice is the argument vocabulary of `--color`.
type ColorChoice uint8

const (
	// ColorAuto colorizes if output goes to a tty (the default).
	ColorAuto ColorChoice = iota
	// ColorAlways always colorizes output.
	ColorAlways
	// ColorNever never colorizes output.
	ColorNever
)

// String returns the color choice spelling.
func (c ColorChoice) String() string {
	switch c {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}
