package project

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/sync/errgroup"
)

// Digest is a content hash of one source file.
type Digest [sha256.Size]byte

// BuildRecord is what the disk cache remembers about one prior build: the
// content hash seen for each file path, purely for reporting "N files
// changed since the last run" to the user. It never gates whether the
// loader parses or the analyzer runs a file — this implementation does
// not do incremental recompilation.
type BuildRecord struct {
	Schema uint16
	Hashes map[string]Digest
}

const buildRecordSchema uint16 = 1

// DiskCache persists the last build's BuildRecord under the user's cache
// directory (grounded on the same XDG layout and msgpack encoding the
// teacher stack uses for its module cache).
type DiskCache struct {
	path string
}

// OpenDiskCache returns a DiskCache rooted at $XDG_CACHE_HOME/app (or
// ~/.cache/app), creating the directory if needed.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{path: filepath.Join(dir, "build.mp")}, nil
}

// Load reads the previous BuildRecord, or returns an empty one if none
// exists yet or the schema changed.
func (c *DiskCache) Load() *BuildRecord {
	rec := &BuildRecord{Schema: buildRecordSchema, Hashes: make(map[string]Digest)}
	data, err := os.ReadFile(c.path) // #nosec G304 -- path is derived from the user's own cache dir
	if err != nil {
		return rec
	}
	var decoded BuildRecord
	if err := msgpack.Unmarshal(data, &decoded); err != nil || decoded.Schema != buildRecordSchema {
		return rec
	}
	return &decoded
}

// Save writes rec to disk, overwriting any previous record.
func (c *DiskCache) Save(rec *BuildRecord) error {
	rec.Schema = buildRecordSchema
	data, err := msgpack.Marshal(rec)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path, data, 0o644) // #nosec G306 -- cache file, not sensitive
}

// WarmUp concurrently hashes every candidate path and reports which ones
// changed since the record in prev, so the CLI can print a short "M of N
// files changed" summary before compiling. It runs entirely outside the
// single-threaded loader/analyzer pipeline described in spec §5 — the
// compile itself always reads and parses every file regardless of what
// this reports.
func WarmUp(ctx context.Context, candidates []string, prev *BuildRecord) (changed []string, current *BuildRecord, err error) {
	current = &BuildRecord{Schema: buildRecordSchema, Hashes: make(map[string]Digest, len(candidates))}
	hashes := make([]Digest, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range candidates {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			content, readErr := os.ReadFile(path) // #nosec G304 -- candidate list built from the loader's own search roots
			if readErr != nil {
				return readErr
			}
			hashes[i] = sha256.Sum256(content)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	for i, path := range candidates {
		current.Hashes[path] = hashes[i]
		if prevHash, ok := prev.Hashes[path]; !ok || prevHash != hashes[i] {
			changed = append(changed, path)
		}
	}
	return changed, current, nil
}

func (d Digest) String() string { return hex.EncodeToString(d[:]) }
