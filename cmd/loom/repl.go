package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/peterh/liner"

	"github.com/loomlang/loom"
)

const (
	historyFile = ".loom_history"
	promptMain  = "loom> "
)

var banner = "loom REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit, :seed N to reseed."

func cmdRepl(args []string) (ret int) {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to loom.yaml")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg := loadConfigOrDefault(*configPath)
	loader := loom.NewFSLoader(cfg.GeneratorPaths)
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fmt.Println(banner)
	slog.Info("repl session start", "seed", seed, "generatorPaths", cfg.GeneratorPaths)
	defer slog.Info("repl session end")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			break
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if handled := replCommand(trimmed, &seed); handled == replQuit {
				return 0
			}
			continue
		}

		prog, perr := loom.Parse(line)
		if perr != nil {
			fmt.Fprintln(os.Stderr, red(loom.FormatWithSource(perr, line)))
			continue
		}
		compiled, cerr := loom.Compile(prog)
		if cerr != nil {
			fmt.Fprintln(os.Stderr, red(cerr.Error()))
			continue
		}
		ev := loom.NewEvaluator(context.Background(), compiled, seed, loader)
		out, eerr := ev.Evaluate()
		if eerr != nil {
			fmt.Fprintln(os.Stderr, red(eerr.Error()))
			continue
		}
		fmt.Println(green(out))
		ln.AppendHistory(line)
	}

	return 0
}

type replResult int

const (
	replContinue replResult = iota
	replQuit
)

func replCommand(cmd string, seed *int64) replResult {
	switch {
	case cmd == ":quit":
		return replQuit
	case strings.HasPrefix(cmd, ":seed "):
		var n int64
		if _, err := fmt.Sscanf(cmd, ":seed %d", &n); err == nil {
			*seed = n
			fmt.Printf("seed set to %d\n", n)
		}
	default:
		fmt.Println("unknown command. Type :quit to exit.")
	}
	return replContinue
}
