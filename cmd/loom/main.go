package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/loomlang/loom"
)

const appName = "loom"

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
}

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "fmt":
		os.Exit(cmdFmt(os.Args[2:]))
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`loom - a deterministic random text generator

Usage:
  %s run <file|-> [seed] [--seed N] [--config path]   Render a generator once
  %s repl [--config path]                      Interactively render generators
  %s fmt <file>                                 Reformat a generator (not implemented)

`, appName, appName, appName)
}

func loadConfigOrDefault(path string) *loom.Config {
	if path == "" {
		path = "loom.yaml"
	}
	cfg, err := loom.LoadConfig(path)
	if err != nil {
		return loom.DefaultConfig()
	}
	return cfg
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	seed := fs.Int64("seed", 0, "PRNG seed; 0 derives one from the current time")
	configPath := fs.String("config", "", "path to loom.yaml")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	rest := fs.Args()
	if len(rest) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file|-> [seed] [--seed N] [--config path]\n", appName)
		return 2
	}
	if len(rest) > 1 {
		n, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: invalid seed %q\n", appName, rest[1])
			return 2
		}
		*seed = n
	}

	var src []byte
	var err error
	if rest[0] == "-" {
		src, err = readAll(os.Stdin)
	} else {
		src, err = os.ReadFile(rest[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, rest[0], err)
		return 1
	}

	cfg := loadConfigOrDefault(*configPath)
	useSeed := *seed
	if useSeed == 0 {
		useSeed = cfg.Seed
	}
	if useSeed == 0 {
		useSeed = time.Now().UnixNano()
	}

	slog.Info("run", "file", rest[0], "seed", useSeed)
	out, err := runSource(string(src), useSeed, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(loom.FormatWithSource(err, string(src))))
		return 1
	}
	fmt.Println(out)
	return 0
}

func runSource(src string, seed int64, cfg *loom.Config) (string, error) {
	prog, err := loom.Parse(src)
	if err != nil {
		return "", err
	}
	compiled, err := loom.Compile(prog)
	if err != nil {
		return "", err
	}
	loader := loom.NewFSLoader(cfg.GeneratorPaths)
	ev := loom.NewEvaluator(context.Background(), compiled, seed, loader)
	return ev.Evaluate()
}

func readAll(f *os.File) ([]byte, error) {
	stat, err := f.Stat()
	if err == nil && stat.Size() > 0 {
		buf := make([]byte, stat.Size())
		n, err := f.Read(buf)
		return buf[:n], err
	}
	var out []byte
	chunk := make([]byte, 4096)
	for {
		n, err := f.Read(chunk)
		out = append(out, chunk[:n]...)
		if err != nil {
			break
		}
	}
	return out, nil
}

// -----------------------------------------------------------------------------
// fmt (stub)
// -----------------------------------------------------------------------------

func cmdFmt(args []string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s fmt <file>\n", appName)
		return 2
	}
	fmt.Printf("Formatting generators is not implemented yet.\n")
	return 0
}

