// rustflags - inspect the flags cargo passes to rustc
//
// Usage:
//
//	rustflags decode [--encoded STR] [--json]   Decode flags and print a table
//	rustflags render [--encoded STR]            Print the re-rendered argv
//	rustflags version                           Print version info
//
// When --encoded is not given, the encoded value is read from the
// CARGO_ENCODED_RUSTFLAGS environment variable; an absent variable decodes
// to zero flags.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Neumenon/rustflags/rustflags"
)

const libVersion = "0.1.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "rustflags",
		Short:        "Inspect the flags cargo passes to rustc",
		SilenceUsage: true,
	}
	root.AddCommand(
		newDecodeCommand(),
		newRenderCommand(),
		newVersionCommand(),
	)
	return root
}

// source resolves the encoded input: an explicit --encoded value wins over
// the environment variable.
func source(cmd *cobra.Command) *rustflags.Flags {
	if encoded, err := cmd.Flags().GetString("encoded"); err == nil && cmd.Flags().Changed("encoded") {
		return rustflags.FromEncoded(encoded)
	}
	return rustflags.FromEnv()
}

// flagRecord is the JSON shape of one decoded flag.
type flagRecord struct {
	Flag   string   `json:"flag"`
	Tokens []string `json:"tokens"`
}

func newDecodeCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode the encoded value into structured flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := source(cmd).Collect()

			if asJSON {
				records := lo.Map(flags, func(f rustflags.Flag, _ int) flagRecord {
					return flagRecord{Flag: flagName(f), Tokens: rustflags.Tokens(f)}
				})
				out, err := json.MarshalIndent(records, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal flags: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			w := table.NewWriter()
			w.SetOutputMirror(cmd.OutOrStdout())
			w.AppendHeader(table.Row{"#", "Flag", "Tokens"})
			for i, f := range flags {
				w.AppendRow(table.Row{i + 1, flagName(f), strings.Join(rustflags.Tokens(f), " ")})
			}
			w.Render()

			fmt.Fprintln(cmd.OutOrStdout(), color.CyanString("%d flag(s) decoded", len(flags)))
			return nil
		},
	}
	cmd.Flags().String("encoded", "", "encoded value (defaults to $"+rustflags.EnvVar+")")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print flags as JSON")
	return cmd
}

func newRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Re-render the decoded flags as raw argv tokens, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			source(cmd).All(func(flag rustflags.Flag) bool {
				for _, token := range rustflags.Tokens(flag) {
					fmt.Fprintln(cmd.OutOrStdout(), token)
				}
				return true
			})
			return nil
		},
	}
	cmd.Flags().String("encoded", "", "encoded value (defaults to $"+rustflags.EnvVar+")")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "rustflags", libVersion)
		},
	}
}

// flagName returns the variant name of a decoded flag, e.g. "Codegen".
func flagName(f rustflags.Flag) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", f), "rustflags.")
}
