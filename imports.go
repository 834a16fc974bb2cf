// imports.go: the GeneratorLoader boundary and import caching.
//
// What this file does
// --------------------
// A generator that references another one via "{import:name}" never reads
// the filesystem (or a network socket, or an embedded bundle) directly —
// it asks a GeneratorLoader, the same inversion daios-ai-msg's interpreter
// uses for its own module resolution (an injected resolver interface, not
// a hardcoded os.ReadFile call), so the CLI, the REPL, and tests can each
// supply a different loader. Within one evaluation, each distinct name is
// parsed and compiled at most once; repeated imports of the same name
// reuse the cached ImportedGenerator.
package loom

import (
	"context"
	"log/slog"
)

// GeneratorLoader resolves an import name to source text. Implementations
// may hit disk, a bundle, or a network service; Context carries
// cancellation since those can all block.
type GeneratorLoader interface {
	Load(ctx context.Context, name string) (string, error)
}

// ImportedGenerator is the runtime value bound by "{import:name}": a
// compiled program reachable by its entry list. Rendering it renders that
// entry list, and "[name.prop]" looks up a property of the entry list.
type ImportedGenerator struct {
	Name    string
	Program *CompiledProgram
}

func (ImportedGenerator) value()        {}
func (ImportedGenerator) Kind() string  { return "generator" }

// importCache resolves and memoizes imports for a single evaluation. Not
// safe for concurrent use; each Evaluate call gets its own.
type importCache struct {
	ctx     context.Context
	loader  GeneratorLoader
	entries map[string]*ImportedGenerator
}

func newImportCache(ctx context.Context, loader GeneratorLoader) *importCache {
	return &importCache{ctx: ctx, loader: loader, entries: map[string]*ImportedGenerator{}}
}

func (c *importCache) resolve(name string) (*ImportedGenerator, error) {
	if g, ok := c.entries[name]; ok {
		slog.Debug("import cache hit", "name", name)
		return g, nil
	}
	if c.loader == nil {
		return nil, &ImportError{Name: name, Cause: newRuntimeError("no GeneratorLoader configured")}
	}
	src, err := c.loader.Load(c.ctx, name)
	if err != nil {
		return nil, &ImportError{Name: name, Cause: err}
	}
	prog, err := Parse(src)
	if err != nil {
		return nil, &ImportError{Name: name, Cause: err}
	}
	cp, err := Compile(prog)
	if err != nil {
		return nil, &ImportError{Name: name, Cause: err}
	}
	g := &ImportedGenerator{Name: name, Program: cp}
	c.entries[name] = g
	return g, nil
}
