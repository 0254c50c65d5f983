package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/iaminfinityiq/architect/pkg/ast"
	"github.com/iaminfinityiq/architect/pkg/diagnostics"
	"github.com/iaminfinityiq/architect/pkg/driver"
	"github.com/iaminfinityiq/architect/pkg/runtime"
)

const replBanner = "Architect REPL. Type :help for commands, :quit to exit."

func runREPL(args []string, cfg *driver.Config) int {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args, " "))
		return 1
	}
	fmt.Fprintln(os.Stdout, replBanner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	session := newREPLSession(cfg)
	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintf(os.Stderr, "read input: %v\n", err)
			}
			fmt.Fprintln(os.Stdout)
			return 0
		}
		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if !session.handle(line, os.Stdout, os.Stderr) {
			return 0
		}
	}
}

// replSession evaluates lines against one persistent environment.
type replSession struct {
	cfg *driver.Config
	env *runtime.Environment
}

func newREPLSession(cfg *driver.Config) *replSession {
	return &replSession{cfg: cfg, env: runtime.NewEnvironment(nil)}
}

// handle processes one input line. It returns false when the session ends.
func (s *replSession) handle(line string, stdout, stderr io.Writer) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	if strings.HasPrefix(trimmed, ":") {
		return s.command(strings.ToLower(trimmed), stdout)
	}

	res, err := driver.Execute(line, s.env)
	if res != nil && s.cfg.ShowProgram {
		fmt.Fprintln(stdout, res.ProgramText)
	}
	if err != nil {
		if diag, ok := diagnostics.As(err); ok {
			fmt.Fprintln(stderr, diag.Located())
		} else {
			fmt.Fprintln(stderr, err)
		}
		return true
	}
	if producesValue(res.Program) {
		fmt.Fprintln(stdout, res.ResultText)
	}
	return true
}

// producesValue reports whether any statement in program yields a value.
func producesValue(program *ast.Program) bool {
	for _, stmt := range program.Statements {
		if _, ok := stmt.(*ast.UpdateStatement); !ok {
			return true
		}
	}
	return false
}

func (s *replSession) command(cmd string, stdout io.Writer) bool {
	switch cmd {
	case ":quit", ":q", ":exit":
		return false
	case ":env":
		bindings := s.env.Snapshot()
		for _, name := range s.env.Keys() {
			fmt.Fprintf(stdout, "%s = %s\n", name, bindings[name])
		}
	case ":reset":
		s.env = runtime.NewEnvironment(nil)
		fmt.Fprintln(stdout, "environment cleared")
	case ":help":
		fmt.Fprintln(stdout, ":env    list frames")
		fmt.Fprintln(stdout, ":reset  clear all frames")
		fmt.Fprintln(stdout, ":quit   exit the session")
	default:
		fmt.Fprintln(stdout, "unknown command. Type :help for a list.")
	}
	return true
}
