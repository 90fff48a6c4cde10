package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new cinder project",
	Long: `Initialize a new cinder project by creating a project manifest (cinder.toml)
and a hello-world entry point (main.ci). If [path|name] is omitted, initializes
the current directory. If a non-existing name is provided, a directory will be
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

// runInit initializes a cinder project at the target path (or the current
// working directory when no argument or "." is provided) by writing a
// cinder.toml manifest and a main.ci entry file.
func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "cinder-project"
	}

	manifestPath := filepath.Join(target, "cinder.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	manifest := buildDefaultManifest(name)
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	mainPath := filepath.Join(target, "main.ci")
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMainCI()), 0o600); err != nil {
			return fmt.Errorf("failed to write main.ci: %w", err)
		}
		createdMain = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Initialized cinder project in %s\n", rel)
	fmt.Fprintf(cmd.OutOrStdout(), "  - cinder.toml\n")
	if createdMain {
		fmt.Fprintf(cmd.OutOrStdout(), "  - main.ci\n")
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "  - main.ci (existing)\n")
	}
	return nil
}

// buildDefaultManifest returns a minimal cinder.toml matching
// internal/project.Manifest's [package]/[build] shape.
func buildDefaultManifest(name string) string {
	return fmt.Sprintf(`# cinder project manifest
[package]
name = %q
entry = ["main.ci"]

[build]
roots = ["."]
output = "cinder"
`, name)
}

// defaultMainCI returns the placeholder cinder program scaffolded by
// `cinder init`, matching spec §4.2's grammar (mod/def/end).
func defaultMainCI() string {
	return `mod main;

def hello() -> int32
  return 0;
end

def main() -> int32
  return hello();
end
`
}
