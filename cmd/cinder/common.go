package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cinder/internal/diag"
	"cinder/internal/diagfmt"
	"cinder/internal/source"
)

// colorMode resolves the root --color flag against the output stream,
// the same "auto|on|off" contract the teacher's CLI exposes.
func colorMode(cmd *cobra.Command) diagfmt.ColorMode {
	val, _ := cmd.Root().PersistentFlags().GetString("color")
	switch val {
	case "on":
		return diagfmt.ColorOn
	case "off":
		return diagfmt.ColorOff
	default:
		if isTerminal(os.Stdout) {
			return diagfmt.ColorOn
		}
		return diagfmt.ColorOff
	}
}

func maxDiagnostics(cmd *cobra.Command) int {
	n, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if n <= 0 {
		return 100
	}
	return n
}

func isQuiet(cmd *cobra.Command) bool {
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return quiet
}

// isPlain reports whether --plain was given, requesting the bare
// "SEVERITY: message at line N" dump (spec §7) instead of diagfmt's
// colorized source-context renderer.
func isPlain(cmd *cobra.Command) bool {
	plain, _ := cmd.Root().PersistentFlags().GetBool("plain")
	return plain
}

// printDiagnostics renders bag to cmd's stderr, choosing between the
// colorized diagfmt.Printer and the plain spec §7 one-liner dump
// depending on --plain.
func printDiagnostics(cmd *cobra.Command, fs *source.FileSet, bag *diag.Bag) {
	if isPlain(cmd) {
		bag.Sort()
		bag.DumpErrors(cmd.ErrOrStderr())
		return
	}
	diagfmt.NewPrinter(cmd.ErrOrStderr(), fs, colorMode(cmd)).Print(bag)
}

// moduleRoots returns the directories srcPaths live in, used as the
// loader's module search roots (spec §4.1) when no cinder.toml names any.
func moduleRoots(srcPaths []string) []string {
	seen := make(map[string]bool)
	var roots []string
	for _, p := range srcPaths {
		dir := filepath.Dir(p)
		if !seen[dir] {
			seen[dir] = true
			roots = append(roots, dir)
		}
	}
	return roots
}
