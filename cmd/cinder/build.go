package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cinder/internal/buildpipeline"
	"cinder/internal/diag"
	"cinder/internal/project"
	"cinder/internal/source"
	"cinder/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	buildOutput    string
	buildCompile   bool
	buildEmitLLVM  bool
	buildEmitAST   bool
	buildEmitTok   bool
	buildLinkFlags []string
	buildUI        bool
)

var buildCmd = &cobra.Command{
	Use:   "build <src>...",
	Short: "Compile one or more cinder source files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "cinder", "output path")
	buildCmd.Flags().BoolVar(&buildCompile, "compile", false, "emit a native executable (requires an external linker)")
	buildCmd.Flags().BoolVar(&buildEmitLLVM, "emit-llvm", false, "emit textual LLVM IR to the output path")
	buildCmd.Flags().BoolVar(&buildEmitAST, "emit-ast", false, "dump the parsed AST instead of compiling")
	buildCmd.Flags().BoolVar(&buildEmitTok, "emit-tokens", false, "dump the token stream instead of compiling")
	buildCmd.Flags().StringArrayVarP(&buildLinkFlags, "link", "l", nil, "additional linker flag (repeatable)")
	buildCmd.Flags().BoolVar(&buildUI, "ui", false, "show a live progress view while building")
}

// runBuild drives the full pipeline: load, analyze, and (unless a debug
// dump flag was given) emit textual IR (spec §6 CLI surface).
func runBuild(cmd *cobra.Command, args []string) error {
	if buildEmitTok {
		for _, src := range args {
			if err := runTokenize(cmd, []string{src}); err != nil {
				return err
			}
		}
		return nil
	}
	if buildEmitAST {
		for _, src := range args {
			if err := runParse(cmd, []string{src}); err != nil {
				return err
			}
		}
		return nil
	}

	_, manifestRoots, manifestOutput := resolveManifest(args)
	if !cmd.Flags().Changed("output") && manifestOutput != "" {
		buildOutput = manifestOutput
	}

	warmBuildCache(cmd, args)

	fs := source.NewFileSet()
	bag := diag.NewBag(maxDiagnostics(cmd))

	roots := append(moduleRoots(args), manifestRoots...)

	var events chan buildpipeline.Event
	var program *tea.Program
	if buildUI && !isQuiet(cmd) {
		events = make(chan buildpipeline.Event, 64)
		model := ui.NewProgressModel("cinder build", args, events)
		program = tea.NewProgram(model)
		go func() {
			_, _ = program.Run()
		}()
	}

	result, err := buildpipeline.Run(fs, bag, roots, args, events)
	if program != nil {
		program.Wait()
	}
	if err != nil {
		return err
	}

	if bag.Len() > 0 && !isQuiet(cmd) {
		printDiagnostics(cmd, fs, bag)
	}
	if result.Analyzer.HadError() {
		return fmt.Errorf("compilation failed: %d diagnostics", bag.Len())
	}

	if buildCompile {
		return fmt.Errorf("cinder: native compilation requires an external linker, not available in this build")
	}

	out := buildOutput
	if buildEmitLLVM || out != "" {
		if out == "" {
			out = "cinder"
		}
		if err := os.WriteFile(out, []byte(result.IR), 0o644); err != nil { //nolint:gosec // user-specified build output path
			return err
		}
	}

	return nil
}

// resolveManifest looks for a cinder.toml next to the first source
// argument and returns its extra module roots and configured output
// path, if any. A missing manifest is not an error — it's optional.
func resolveManifest(args []string) (m *project.Manifest, roots []string, output string) {
	if len(args) == 0 {
		return nil, nil, ""
	}
	path := filepath.Join(filepath.Dir(args[0]), "cinder.toml")
	manifest, err := project.LoadManifest(path)
	if err != nil {
		return nil, nil, ""
	}
	return manifest, manifest.Build.Roots, manifest.OutputPath()
}

// warmBuildCache hashes the requested sources against the last build's
// disk cache and prints a short changed-file summary (spec's ambient
// disk cache is informational only — it never gates compilation).
func warmBuildCache(cmd *cobra.Command, args []string) {
	if isQuiet(cmd) {
		return
	}
	cache, err := project.OpenDiskCache("cinder")
	if err != nil {
		return
	}
	prev := cache.Load()
	changed, current, err := project.WarmUp(context.Background(), args, prev)
	if err != nil {
		return
	}
	if len(changed) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d files changed since last build\n", len(changed), len(args))
	}
	_ = cache.Save(current)
}
