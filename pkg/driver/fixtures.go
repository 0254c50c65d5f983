package driver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iaminfinityiq/architect/pkg/diagnostics"
)

// Fixture pairs a source program with its expected outcome.
type Fixture struct {
	Path   string        `yaml:"-"`
	Name   string        `yaml:"name"`
	Source string        `yaml:"source"`
	Expect FixtureExpect `yaml:"expect"`
}

// FixtureExpect holds exactly one of Result or Error.
type FixtureExpect struct {
	Result *string       `yaml:"result,omitempty"`
	Error  *FixtureError `yaml:"error,omitempty"`
}

// FixtureError describes an expected diagnostic.
type FixtureError struct {
	Kind    string `yaml:"kind"`
	Message string `yaml:"message"`
}

// FixtureOutcome reports how a fixture run compared with its expectation.
type FixtureOutcome struct {
	Fixture *Fixture
	Passed  bool
	Want    string
	Got     string
}

// LoadFixtures reads every *.yml and *.yaml fixture in dir, sorted by file name.
func LoadFixtures(dir string) ([]*Fixture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fixtures: read %s: %w", dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yml", ".yaml":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	fixtures := make([]*Fixture, 0, len(names))
	for _, name := range names {
		fixture, err := LoadFixture(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, fixture)
	}
	return fixtures, nil
}

// LoadFixture decodes and validates a single fixture file.
func LoadFixture(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: open %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)

	var fixture Fixture
	if err := decoder.Decode(&fixture); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("fixtures: %s is empty", path)
		}
		return nil, fmt.Errorf("fixtures: parse %s: %w", path, err)
	}
	fixture.Path = path
	if fixture.Name == "" {
		fixture.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if err := fixture.validate(); err != nil {
		return nil, err
	}
	return &fixture, nil
}

func (f *Fixture) validate() error {
	var issues []string
	switch {
	case f.Expect.Result == nil && f.Expect.Error == nil:
		issues = append(issues, "expect must set result or error")
	case f.Expect.Result != nil && f.Expect.Error != nil:
		issues = append(issues, "expect must not set both result and error")
	}
	if f.Expect.Error != nil {
		if _, ok := diagnostics.ParseKind(f.Expect.Error.Kind); !ok {
			issues = append(issues, fmt.Sprintf("unknown error kind %q", f.Expect.Error.Kind))
		}
	}
	if len(issues) > 0 {
		return &ConfigError{Path: f.Path, Issues: issues}
	}
	return nil
}

// Run executes the fixture in a fresh environment and compares the outcome.
func (f *Fixture) Run() FixtureOutcome {
	out := FixtureOutcome{Fixture: f}
	if f.Expect.Error != nil {
		out.Want = f.Expect.Error.Kind + ": " + f.Expect.Error.Message
	} else if f.Expect.Result != nil {
		out.Want = *f.Expect.Result
	}

	res, err := Run(f.Source)
	switch {
	case err != nil:
		out.Got = err.Error()
		if f.Expect.Error != nil {
			if diag, ok := diagnostics.As(err); ok {
				out.Passed = diag.Kind.String() == f.Expect.Error.Kind && diag.Message == f.Expect.Error.Message
			}
		}
	default:
		out.Got = res.ResultText
		out.Passed = f.Expect.Result != nil && res.ResultText == *f.Expect.Result
	}
	return out
}

// Summary renders a one-line report for the outcome.
func (o FixtureOutcome) Summary() string {
	status := "ok"
	if !o.Passed {
		status = "FAIL"
	}
	line := fmt.Sprintf("%-4s %s", status, o.Fixture.Name)
	if !o.Passed {
		line += fmt.Sprintf("\n     want: %s\n      got: %s", o.Want, o.Got)
	}
	return line
}
