package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/iaminfinityiq/architect/pkg/diagnostics"
	"github.com/iaminfinityiq/architect/pkg/driver"
)

const cliToolVersion = "architect-cli 0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	configPath, args, err := extractConfigFlag(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	if len(args) > 0 {
		switch args[0] {
		case "--help", "-h", "help":
			printUsage()
			return 0
		case "--version", "-V", "version":
			fmt.Fprintln(os.Stdout, cliToolVersion)
			return 0
		}
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	if len(args) == 0 {
		return promptEntry(cfg)
	}

	switch args[0] {
	case "run":
		return runEntry(args[1:], cfg)
	case "ast":
		return runAST(args[1:], cfg)
	case "tokens":
		return runTokens(args[1:], cfg)
	case "repl":
		return runREPL(args[1:], cfg)
	case "test":
		return runFixtures(args[1:])
	default:
		if strings.HasPrefix(args[0], "-") {
			fmt.Fprintf(os.Stderr, "unknown flag: %s\n", args[0])
			printUsage()
			return 1
		}
		return runEntry(args, cfg)
	}
}

// extractConfigFlag strips a leading --config flag from args.
func extractConfigFlag(args []string) (string, []string, error) {
	if len(args) == 0 {
		return "", args, nil
	}
	switch {
	case args[0] == "--config":
		if len(args) < 2 || args[1] == "" {
			return "", nil, fmt.Errorf("--config requires a path")
		}
		return args[1], args[2:], nil
	case strings.HasPrefix(args[0], "--config="):
		path := strings.TrimPrefix(args[0], "--config=")
		if path == "" {
			return "", nil, fmt.Errorf("--config requires a path")
		}
		return path, args[1:], nil
	default:
		return "", args, nil
	}
}

// loadConfig reads the explicit config path, or architect.yml from the
// working directory when present, falling back to defaults.
func loadConfig(explicit string) (*driver.Config, error) {
	if explicit != "" {
		return driver.LoadConfig(explicit)
	}
	if path, ok := driver.FindConfig("."); ok {
		return driver.LoadConfig(path)
	}
	return driver.DefaultConfig(), nil
}

// reportError prints err to stderr and returns the matching exit code.
func reportError(err error) int {
	if diag, ok := diagnostics.As(err); ok {
		fmt.Fprintln(os.Stderr, diag.Located())
	} else {
		fmt.Fprintf(os.Stderr, "%v\n", err)
	}
	return diagnostics.ExitCode(err)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  architect [--config <file>] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  architect                      prompt for a script to run")
	fmt.Fprintln(os.Stderr, "  architect <file>               run a script")
	fmt.Fprintln(os.Stderr, "  architect run <file>           run a script")
	fmt.Fprintln(os.Stderr, "  architect ast [--format=text|json|yaml] <file>")
	fmt.Fprintln(os.Stderr, "  architect tokens <file>        print the token stream as JSON lines")
	fmt.Fprintln(os.Stderr, "  architect repl                 start an interactive session")
	fmt.Fprintln(os.Stderr, "  architect test [dir ...]       run YAML fixture suites")
	fmt.Fprintln(os.Stderr, "  architect --version")
}
