package rustflags

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// everyVariant holds one populated instance of each flag variant.
var everyVariant = []Flag{
	Help{},
	Cfg{Name: "semver_exempt"},
	Cfg{Name: "feature", Value: "std", HasValue: true},
	LibrarySearchPath{Kind: LibraryKindAll, Path: "deps"},
	LibrarySearchPath{Kind: LibraryKindNative, Path: "/usr/lib"},
	Link{Kind: LinkKindDylib, Name: "z"},
	Link{Kind: LinkKindStatic, Name: "z", Rename: "zlib", HasRename: true},
	Link{
		Kind: LinkKindDylib,
		Modifiers: []LinkModifier{
			{Prefix: ModifierEnable, Kind: ModifierBundle},
			{Prefix: ModifierDisable, Kind: ModifierAsNeeded},
		},
		Name: "z",
	},
	CrateType{Kind: CrateProcMacro},
	CrateName{Name: "core"},
	Edition{Year: 2021},
	Emit{Kind: EmitLlvmIr},
	Print{Info: "target-list"},
	Out{Path: "main.o"},
	OutDir{Path: "target/debug"},
	Explain{Code: "E0282"},
	Test{},
	Target{Triple: "x86_64-unknown-linux-gnu"},
	Allow{Lint: "dead_code"},
	Warn{Lint: "unused"},
	ForceWarn{Lint: "unsafe_code"},
	Deny{Lint: "warnings"},
	Forbid{Lint: "unsafe_code"},
	CapLints{Level: LintDeny},
	Codegen{Opt: "embed-bitcode"},
	Codegen{Opt: "debuginfo", Value: "2", HasValue: true},
	Version{},
	Verbose{},
	Extern{Name: "serde"},
	Extern{Name: "serde", Path: "libserde.rmeta", HasPath: true},
	ExternLocation{Name: "serde", Location: `json:{"target":"//third-party:serde"}`},
	Sysroot{Path: ".rustup/toolchains/nightly"},
	Z{Option: "unstable-options"},
	ErrorFormat{Kind: ErrorFormatHuman},
	JSON{Config: "artifacts"},
	Color{Choice: ColorAuto},
	RemapPathPrefix{From: "/home/user", To: "/remapped"},
}

func TestRoundTrip_EveryVariant(t *testing.T) {
	for _, flag := range everyVariant {
		tokens := Tokens(flag)
		require.NotEmpty(t, tokens, "%#v rendered no tokens", flag)

		got := FromEncoded(strings.Join(tokens, "\x1f")).Collect()
		if diff := cmp.Diff([]Flag{flag}, got); diff != "" {
			t.Errorf("round trip of %#v (-want +got):\n%s", flag, diff)
		}
	}
}

func TestRoundTrip_Stream(t *testing.T) {
	// Decode, render, re-join, decode again: the flag sequence and the
	// encoded form must both be stable.
	encoded := Encode(everyVariant)
	first := FromEncoded(encoded).Collect()
	if diff := cmp.Diff(everyVariant, first); diff != "" {
		t.Fatalf("first decode (-want +got):\n%s", diff)
	}

	reEncoded := Encode(first)
	require.Equal(t, encoded, reEncoded)

	second := FromEncoded(reEncoded).Collect()
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("second decode (-want +got):\n%s", diff)
	}
}

func TestDecode_Robustness(t *testing.T) {
	// Any byte sequence must decode without fatal failure, possibly to
	// zero flags.
	inputs := []string{
		"",
		"\x1f",
		"\x1f\x1f\x1f",
		"-",
		"--",
		"---",
		"-\x1f-\x1f-",
		"\xff\xfe\xfd",
		"-\xff",
		"-g\xff",
		"--\xff=x",
		"--cfg=\xff",
		"--emit\x1f\xff,mir",
		"no delimiters at all just text",
		strings.Repeat("\xf0\x9f", 64),
		"--emit=asm,\xffmir",
		"-l\x1f\xff=NAME",
	}

	for _, input := range inputs {
		require.NotPanics(t, func() {
			flags := FromEncoded(input).Collect()
			for _, f := range flags {
				Tokens(f)
			}
		}, "input %q", input)
	}

	// Specific expectations where the grammar pins them down.
	require.Empty(t, FromEncoded("\xff\xfe\xfd").Collect())
	require.Empty(t, FromEncoded("no delimiters at all just text").Collect())
	require.Equal(t,
		[]Flag{Emit{Kind: EmitMir}},
		FromEncoded("--emit\x1f\xff,mir").Collect(),
	)
}

func TestFromEnv_Absent(t *testing.T) {
	t.Setenv(EnvVar, "")
	require.Empty(t, FromEnv().Collect())

	t.Setenv(EnvVar, "-v\x1f--test")
	require.Equal(t, []Flag{Verbose{}, Test{}}, FromEnv().Collect())
}
