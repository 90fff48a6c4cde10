package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cinder/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cinder",
	Short: "cinder language compiler and toolchain",
	Long:  "cinder is a small compiled language's frontend: lexer, parser, semantic analyzer, and a textual LLVM IR emitter.",
}

// main registers every subcommand and persistent flag, then executes the
// root command, exiting with status 1 on any error (spec §6 "Exit 0 on
// success, 1 on any error").
func main() {
	rootCmd.Version = version.VersionString()

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostic output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to buffer")
	rootCmd.PersistentFlags().Bool("plain", false, "dump diagnostics as plain \"SEVERITY: message at line N\" lines")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal, used to resolve
// `--color auto`.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
