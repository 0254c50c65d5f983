package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"gopkg.in/yaml.v3"

	"github.com/iaminfinityiq/architect/pkg/driver"
	"github.com/iaminfinityiq/architect/pkg/lexer"
	"github.com/iaminfinityiq/architect/pkg/parser"
)

func runEntry(args []string, cfg *driver.Config) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "architect run requires a source file")
		return 1
	}
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		return 1
	}
	return executeScript(cfg.ResolveScriptPath(args[0]), cfg)
}

// promptEntry asks for a script name on the terminal, then runs it.
func promptEntry(cfg *driver.Config) int {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	name, err := ln.Prompt(fmt.Sprintf("Choose a file to run (don't need %s): ", cfg.Extension))
	ln.Close()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(os.Stdout)
			return 1
		}
		fmt.Fprintf(os.Stderr, "failed to read script name: %v\n", err)
		return 1
	}
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Fprintln(os.Stderr, "no script chosen")
		return 1
	}
	return executeScript(cfg.ResolveScriptPath(name), cfg)
}

func executeScript(path string, cfg *driver.Config) int {
	res, err := driver.RunFile(path)
	if res != nil && cfg.ShowProgram {
		fmt.Fprintln(os.Stdout, res.ProgramText)
	}
	if err != nil {
		return reportError(err)
	}
	fmt.Fprintln(os.Stdout, res.ResultText)
	return 0
}

func runAST(args []string, cfg *driver.Config) int {
	format := "text"
	var files []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case strings.HasPrefix(arg, "--format="):
			format = strings.TrimPrefix(arg, "--format=")
		case arg == "--format":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--format requires a value")
				return 1
			}
			i++
			format = args[i]
		case strings.HasPrefix(arg, "-"):
			fmt.Fprintf(os.Stderr, "unknown flag: %s\n", arg)
			return 1
		default:
			files = append(files, arg)
		}
	}
	if len(files) != 1 {
		fmt.Fprintln(os.Stderr, "architect ast requires exactly one source file")
		return 1
	}

	source, err := driver.ReadScript(cfg.ResolveScriptPath(files[0]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	program, err := parser.ParseSource(source)
	if err != nil {
		return reportError(err)
	}

	switch format {
	case "text":
		fmt.Fprintln(os.Stdout, program.String())
	case "json":
		data, err := json.MarshalIndent(program, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode ast: %v\n", err)
			return 1
		}
		fmt.Fprintln(os.Stdout, string(data))
	case "yaml":
		data, err := yaml.Marshal(program)
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode ast: %v\n", err)
			return 1
		}
		fmt.Fprint(os.Stdout, string(data))
	default:
		fmt.Fprintf(os.Stderr, "unsupported format %q (want text, json or yaml)\n", format)
		return 1
	}
	return 0
}

func runTokens(args []string, cfg *driver.Config) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "architect tokens requires exactly one source file")
		return 1
	}
	source, err := driver.ReadScript(cfg.ResolveScriptPath(args[0]))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	toks, err := lexer.Tokenize(source)
	if err != nil {
		return reportError(err)
	}
	enc := json.NewEncoder(os.Stdout)
	for _, tok := range toks {
		if err := enc.Encode(tok); err != nil {
			fmt.Fprintf(os.Stderr, "encode token: %v\n", err)
			return 1
		}
	}
	return 0
}
