// fsloader.go: the filesystem-backed GeneratorLoader.
//
// What this file does
// --------------------
// The concrete Loader the CLI and REPL wire in: import names resolve
// against a configured search path list, optionally guided by a
// manifest.yaml mapping short names to filenames, parsed with
// github.com/goccy/go-yaml the same way daios-ai-msg's own config loading
// (and ardnew-aenv's env-file loading) reach for a YAML library instead of
// hand-rolling a parser.
package loom

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// FSLoader resolves "{import:name}" against a list of directories, each of
// which may contain a manifest.yaml mapping names to relative file paths;
// absent a manifest entry, "name" resolves to "name.loom" in the first
// directory where that file exists.
type FSLoader struct {
	Paths     []string
	manifests map[string]map[string]string
}

func NewFSLoader(paths []string) *FSLoader {
	return &FSLoader{Paths: paths, manifests: map[string]map[string]string{}}
}

func (f *FSLoader) Load(ctx context.Context, name string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	for _, dir := range f.Paths {
		manifest, err := f.manifestFor(dir)
		if err != nil {
			return "", err
		}
		candidate := name + ".loom"
		if rel, ok := manifest[name]; ok {
			candidate = rel
		}
		full := filepath.Join(dir, candidate)
		data, err := os.ReadFile(full)
		if err == nil {
			slog.Debug("loaded generator", "name", name, "path", full)
			return string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
	}
	slog.Warn("generator not found", "name", name, "paths", f.Paths)
	return "", fmt.Errorf("generator %q not found in any of %v", name, f.Paths)
}

// manifestFor lazily loads and caches dir/manifest.yaml, which maps
// generator names to filenames relative to dir. A directory with no
// manifest.yaml is valid; it just falls back to "<name>.loom".
func (f *FSLoader) manifestFor(dir string) (map[string]string, error) {
	if m, ok := f.manifests[dir]; ok {
		return m, nil
	}
	data, err := os.ReadFile(filepath.Join(dir, "manifest.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			f.manifests[dir] = map[string]string{}
			return f.manifests[dir], nil
		}
		return nil, err
	}
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s/manifest.yaml: %w", dir, err)
	}
	f.manifests[dir] = m
	return m, nil
}
