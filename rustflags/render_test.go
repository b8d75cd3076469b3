package rustflags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokens_Canonical(t *testing.T) {
	tests := []struct {
		name string
		flag Flag
		want []string
	}{
		{"help", Help{}, []string{"--help"}},
		{"test", Test{}, []string{"--test"}},
		{"version", Version{}, []string{"--version"}},
		{"verbose", Verbose{}, []string{"--verbose"}},
		{"cfg bare", Cfg{Name: "semver_exempt"}, []string{"--cfg", "semver_exempt"}},
		{
			"cfg value regains quotes",
			Cfg{Name: "feature", Value: "std", HasValue: true},
			[]string{"--cfg", `feature="std"`},
		},
		{
			"crate type",
			CrateType{Kind: CrateCdylib},
			[]string{"--crate-type", "cdylib"},
		},
		{"edition", Edition{Year: 2018}, []string{"--edition", "2018"}},
		{"emit", Emit{Kind: EmitDepInfo}, []string{"--emit", "dep-info"}},
		{
			"codegen bare",
			Codegen{Opt: "embed-bitcode"},
			[]string{"-C", "embed-bitcode"},
		},
		{
			"codegen value",
			Codegen{Opt: "opt-level", Value: "2", HasValue: true},
			[]string{"-C", "opt-level=2"},
		},
		{"cap lints", CapLints{Level: LintWarn}, []string{"--cap-lints", "warn"}},
		{"extern bare", Extern{Name: "serde"}, []string{"--extern", "serde"}},
		{
			"extern path",
			Extern{Name: "serde", Path: "libserde.rmeta", HasPath: true},
			[]string{"--extern", "serde=libserde.rmeta"},
		},
		{
			"remap",
			RemapPathPrefix{From: "FROM", To: "TO"},
			[]string{"--remap-path-prefix", "FROM=TO"},
		},
		{"error format", ErrorFormat{Kind: ErrorFormatShort}, []string{"--error-format", "short"}},
		{"color", Color{Choice: ColorNever}, []string{"--color", "never"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokens(tt.flag))
		})
	}
}

func TestTokens_LibrarySearchPathDefault(t *testing.T) {
	// The default kind is omitted on render.
	assert.Equal(t,
		[]string{"-L", "PATH"},
		Tokens(LibrarySearchPath{Kind: LibraryKindAll, Path: "PATH"}),
	)
	assert.Equal(t,
		[]string{"-L", "framework=PATH"},
		Tokens(LibrarySearchPath{Kind: LibraryKindFramework, Path: "PATH"}),
	)
}

func TestTokens_LinkDefaultSuppression(t *testing.T) {
	// Default kind with no modifiers renders as the bare name.
	assert.Equal(t,
		[]string{"-l", "NAME"},
		Tokens(Link{Kind: LinkKindDylib, Name: "NAME"}),
	)

	// A modifier forces the kind to be written even when it is the default,
	// so the modifier list stays attached correctly.
	assert.Equal(t,
		[]string{"-l", "dylib:+as-needed=NAME"},
		Tokens(Link{
			Kind:      LinkKindDylib,
			Modifiers: []LinkModifier{{Prefix: ModifierEnable, Kind: ModifierAsNeeded}},
			Name:      "NAME",
		}),
	)

	assert.Equal(t,
		[]string{"-l", "static:+bundle,-whole-archive=NAME:RENAME"},
		Tokens(Link{
			Kind: LinkKindStatic,
			Modifiers: []LinkModifier{
				{Prefix: ModifierEnable, Kind: ModifierBundle},
				{Prefix: ModifierDisable, Kind: ModifierWholeArchive},
			},
			Name:      "NAME",
			Rename:    "RENAME",
			HasRename: true,
		}),
	)

	// Non-default kind without modifiers still writes the kind.
	assert.Equal(t,
		[]string{"-l", "framework=NAME"},
		Tokens(Link{Kind: LinkKindFramework, Name: "NAME"}),
	)
}

func TestTokens_RawPaths(t *testing.T) {
	// Path-bearing fields render raw so non-UTF-8 paths survive.
	assert.Equal(t,
		[]string{"--sysroot", "/opt/\xffsysroot"},
		Tokens(Sysroot{Path: "/opt/\xffsysroot"}),
	)
	assert.Equal(t,
		[]string{"-o", "out\xfe.o"},
		Tokens(Out{Path: "out\xfe.o"}),
	)
}

func TestEncode_JoinsWithSeparator(t *testing.T) {
	got := Encode([]Flag{Verbose{}, Codegen{Opt: "lto"}})
	assert.Equal(t, "--verbose\x1f-C\x1flto", got)
	assert.Equal(t, "", Encode(nil))
}
