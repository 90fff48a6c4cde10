package project

import "github.com/BurntSushi/toml"

// Manifest is the optional cinder.toml project file: entry files and
// additional module search roots, read once before the loader runs. It
// carries no semantics the loader itself doesn't already expose through
// CLI flags — it is a convenience for multi-file projects.
type Manifest struct {
	Package struct {
		Name  string   `toml:"name"`
		Entry []string `toml:"entry"`
	} `toml:"package"`
	Build struct {
		Roots  []string `toml:"roots"`
		Output string   `toml:"output"`
	} `toml:"build"`
}

// LoadManifest decodes a cinder.toml file at path.
func LoadManifest(path string) (*Manifest, error) {
	var m Manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// OutputPath returns the configured output path, defaulting to "cinder"
// (spec §6 CLI surface: "-o PATH output path (default: cinder)").
func (m *Manifest) OutputPath() string {
	if m.Build.Output != "" {
		return m.Build.Output
	}
	return "cinder"
}
