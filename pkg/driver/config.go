package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file FindConfig looks for.
const ConfigFileName = "architect.yml"

// Config holds the settings read from architect.yml.
type Config struct {
	Path        string
	Extension   string
	ShowProgram bool
	HistoryFile string
	Prompt      string
}

type configFile struct {
	Extension   *string `yaml:"extension"`
	ShowProgram *bool   `yaml:"show_program"`
	HistoryFile *string `yaml:"history_file"`
	Prompt      *string `yaml:"prompt"`
}

// ConfigError aggregates configuration validation failures.
type ConfigError struct {
	Path   string
	Issues []string
}

func (e *ConfigError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("config validation failed")
	if e.Path != "" {
		b.WriteString(" for ")
		b.WriteString(e.Path)
	}
	b.WriteString(":")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// DefaultConfig returns the settings used when no architect.yml exists.
func DefaultConfig() *Config {
	return &Config{
		Extension:   ".arc",
		ShowProgram: true,
		HistoryFile: ".architect_history",
		Prompt:      "architect> ",
	}
}

// FindConfig returns the path of architect.yml in dir, if present.
func FindConfig(dir string) (string, bool) {
	candidate := filepath.Join(dir, ConfigFileName)
	info, err := os.Stat(candidate)
	if err != nil || info.IsDir() {
		return "", false
	}
	return candidate, true
}

// LoadConfig parses architect.yml from disk. Fields missing from the file keep
// their defaults; unknown fields are rejected.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var raw configFile
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse %s: %w", absPath, err)
	}

	cfg := raw.toConfig(absPath)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (raw configFile) toConfig(path string) *Config {
	cfg := DefaultConfig()
	cfg.Path = path
	if raw.Extension != nil {
		cfg.Extension = strings.TrimSpace(*raw.Extension)
	}
	if raw.ShowProgram != nil {
		cfg.ShowProgram = *raw.ShowProgram
	}
	if raw.HistoryFile != nil {
		cfg.HistoryFile = strings.TrimSpace(*raw.HistoryFile)
	}
	if raw.Prompt != nil {
		cfg.Prompt = *raw.Prompt
	}
	return cfg
}

func (c *Config) validate() error {
	errs := ConfigError{Path: c.Path}
	switch {
	case c.Extension == "":
		errs.Issues = append(errs.Issues, "extension must not be empty")
	case !strings.HasPrefix(c.Extension, "."):
		errs.Issues = append(errs.Issues, fmt.Sprintf("extension %q must start with '.'", c.Extension))
	case len(c.Extension) == 1 || strings.ContainsAny(c.Extension, `/\`):
		errs.Issues = append(errs.Issues, fmt.Sprintf("extension %q is not a valid file suffix", c.Extension))
	}
	if c.Prompt == "" {
		errs.Issues = append(errs.Issues, "prompt must not be empty")
	}
	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

// HistoryPath resolves the REPL history file. Relative paths are placed in
// the user's home directory; an empty setting disables history.
func (c *Config) HistoryPath() string {
	if c.HistoryFile == "" {
		return ""
	}
	if filepath.IsAbs(c.HistoryFile) {
		return c.HistoryFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, c.HistoryFile)
}

// ResolveScriptPath appends the configured extension when name has none.
func (c *Config) ResolveScriptPath(name string) string {
	if filepath.Ext(name) != "" {
		return name
	}
	return name + c.Extension
}
