package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iaminfinityiq/architect/pkg/driver"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func captureCLI(t *testing.T, args []string) (int, string, string) {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("stdout pipe: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("stderr pipe: %v", err)
	}

	os.Stdout = wOut
	os.Stderr = wErr

	code := run(args)

	if err := wOut.Close(); err != nil {
		t.Fatalf("stdout close: %v", err)
	}
	if err := wErr.Close(); err != nil {
		t.Fatalf("stderr close: %v", err)
	}

	os.Stdout = stdout
	os.Stderr = stderr

	outBytes, err := io.ReadAll(rOut)
	if err != nil {
		t.Fatalf("stdout read: %v", err)
	}
	errBytes, err := io.ReadAll(rErr)
	if err != nil {
		t.Fatalf("stderr read: %v", err)
	}
	_ = rOut.Close()
	_ = rErr.Close()

	return code, string(outBytes), string(errBytes)
}

func TestRunScriptPrintsProgramAndResult(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "house.arc")
	writeFile(t, script, "build frame x with screw 2 + 3 * 4\n")

	code, stdout, stderr := captureCLI(t, []string{script})
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if !strings.HasPrefix(stdout, "(PROGRAM STATEMENT [") || !strings.HasSuffix(stdout, "\n14\n") {
		t.Fatalf("unexpected stdout:\n%s", stdout)
	}
}

func TestRunAppendsExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "house.arc"), "7 / 2")

	code, stdout, stderr := captureCLI(t, []string{"run", filepath.Join(dir, "house")})
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if !strings.HasSuffix(stdout, "3.5\n") {
		t.Fatalf("unexpected stdout:\n%s", stdout)
	}
}

func TestRunHonoursConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "architect.yml")
	writeFile(t, cfgPath, "extension: .frame\nshow_program: false\n")
	writeFile(t, filepath.Join(dir, "shed.frame"), "2 ^ 3 ^ 2\n")

	code, stdout, stderr := captureCLI(t, []string{"--config", cfgPath, filepath.Join(dir, "shed")})
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	if stdout != "512\n" {
		t.Fatalf("expected only the result, got %q", stdout)
	}

	writeFile(t, cfgPath, "colour: blue\n")
	code, _, stderr = captureCLI(t, []string{"--config=" + cfgPath, "run", "x"})
	if code != 1 || !strings.Contains(stderr, "failed to load config") {
		t.Fatalf("expected config failure, got %d: %s", code, stderr)
	}
}

func TestRunReportsErrorKinds(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		source string
		code   int
		stderr string
	}{
		{"build frame x with screw 1.2.3", 1, "SyntaxError: Expected 0 or 1 '.' in a number, got 2/1 (at 1:26)"},
		{"fix frame y with screw 1", 2, "VariableError: Cannot update variable y because it does not exist. (at 1:1)"},
		{"5 / 0", 3, "MathError: Cannot divide 5 by 0 (at 1:1)"},
		{"true + 1", 4, "DataTypeError: Unexpected operation between boolean and number (at 1:1)"},
		{"decision", 5, "InterpreterError: decision statements are not implemented (at 1:1)"},
	}
	for i, tc := range cases {
		script := filepath.Join(dir, "case"+string(rune('a'+i))+".arc")
		writeFile(t, script, tc.source)
		code, _, stderr := captureCLI(t, []string{script})
		if code != tc.code {
			t.Fatalf("%q: exit code %d, want %d", tc.source, code, tc.code)
		}
		if strings.TrimSpace(stderr) != tc.stderr {
			t.Fatalf("%q: stderr %q, want %q", tc.source, stderr, tc.stderr)
		}
	}

	code, _, stderr := captureCLI(t, []string{filepath.Join(dir, "missing.arc")})
	if code != 1 || !strings.Contains(stderr, "missing.arc") {
		t.Fatalf("expected read failure, got %d: %s", code, stderr)
	}
}

func TestASTCommandFormats(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "beam.arc")
	writeFile(t, script, "build frame beam with screw 6 / 3\n")

	code, stdout, stderr := captureCLI(t, []string{"ast", script})
	if code != 0 || !strings.Contains(stdout, "(ASSIGNMENT STATEMENT: beam assigned with") {
		t.Fatalf("text format failed (%d): %s%s", code, stdout, stderr)
	}
	code, stdout, stderr = captureCLI(t, []string{"ast", "--format=json", script})
	if code != 0 || !strings.Contains(stdout, `"type": "AssignmentStatement"`) || !strings.Contains(stdout, `"operator": "Divide"`) {
		t.Fatalf("json format failed (%d): %s%s", code, stdout, stderr)
	}
	code, stdout, stderr = captureCLI(t, []string{"ast", "--format", "yaml", script})
	if code != 0 || !strings.Contains(stdout, "type: Program") {
		t.Fatalf("yaml format failed (%d): %s%s", code, stdout, stderr)
	}
	if code, _, _ := captureCLI(t, []string{"ast", "--format=xml", script}); code != 1 {
		t.Fatalf("unknown format should fail, got %d", code)
	}
}

func TestTokensCommand(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "wall.arc")
	writeFile(t, script, "build frame wall with screw 1")

	code, stdout, stderr := captureCLI(t, []string{"tokens", script})
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 tokens, got %d:\n%s", len(lines), stdout)
	}
	if lines[0] != `{"kind":"Build","text":"build","pos":{"line":1,"column":1}}` {
		t.Fatalf("unexpected first token %s", lines[0])
	}
	if !strings.Contains(lines[6], `"kind":"EOF"`) {
		t.Fatalf("expected trailing EOF, got %s", lines[6])
	}
}

func TestTestCommandRunsFixtures(t *testing.T) {
	code, stdout, stderr := captureCLI(t, []string{"test", filepath.Join("..", "..", "pkg", "driver", "testdata", "fixtures")})
	if code != 0 {
		t.Fatalf("exit code %d\n%s%s", code, stdout, stderr)
	}
	if !strings.Contains(stdout, " passed, 0 failed") {
		t.Fatalf("unexpected summary:\n%s", stdout)
	}

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "bad.yml"), "source: \"1 + 1\"\nexpect:\n  result: \"3\"\n")
	code, stdout, _ = captureCLI(t, []string{"test", dir})
	if code != 1 || !strings.Contains(stdout, "FAIL bad") {
		t.Fatalf("expected failing fixture to be reported, got %d:\n%s", code, stdout)
	}
}

func TestVersionAndUsage(t *testing.T) {
	code, stdout, _ := captureCLI(t, []string{"--version"})
	if code != 0 || strings.TrimSpace(stdout) != cliToolVersion {
		t.Fatalf("unexpected version output %q", stdout)
	}
	code, _, stderr := captureCLI(t, []string{"--help"})
	if code != 0 || !strings.Contains(stderr, "Usage:") {
		t.Fatalf("unexpected help output %q", stderr)
	}
	if code, _, _ := captureCLI(t, []string{"--bogus"}); code != 1 {
		t.Fatalf("unknown flag should fail, got %d", code)
	}
	if code, _, _ := captureCLI(t, []string{"--config"}); code != 1 {
		t.Fatalf("--config without a path should fail, got %d", code)
	}
}

func TestREPLSessionPersistsEnvironment(t *testing.T) {
	cfg := driver.DefaultConfig()
	cfg.ShowProgram = false
	session := newREPLSession(cfg)
	var out, errOut bytes.Buffer

	feed := func(line string) bool {
		out.Reset()
		errOut.Reset()
		return session.handle(line, &out, &errOut)
	}

	feed("build frame x with screw 20")
	if out.String() != "20\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
	feed("fix frame x with screw x + 1")
	if out.String() != "" {
		t.Fatalf("updates should print nothing, got %q", out.String())
	}
	feed("x")
	if out.String() != "21\n" {
		t.Fatalf("expected 21, got %q", out.String())
	}
	feed("build frame x with screw 1")
	if !strings.Contains(errOut.String(), "VariableError: Cannot assign variable x because it exists.") {
		t.Fatalf("expected redeclaration error, got %q", errOut.String())
	}
	feed(":env")
	if out.String() != "x = 21\n" {
		t.Fatalf("unexpected env listing %q", out.String())
	}
	feed(":reset")
	feed(":env")
	if out.String() != "" {
		t.Fatalf("expected empty environment after reset, got %q", out.String())
	}
	if feed(":quit") {
		t.Fatalf(":quit should end the session")
	}
}

func TestREPLShowsProgramBeforeRuntimeError(t *testing.T) {
	session := newREPLSession(driver.DefaultConfig())
	var out, errOut bytes.Buffer

	session.handle("5 / 0", &out, &errOut)
	if !strings.HasPrefix(out.String(), "(PROGRAM STATEMENT [") {
		t.Fatalf("expected program rendering before the error, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "MathError: Cannot divide 5 by 0") {
		t.Fatalf("expected math error, got %q", errOut.String())
	}

	out.Reset()
	errOut.Reset()
	session.handle("1.2.3", &out, &errOut)
	if out.String() != "" || !strings.Contains(errOut.String(), "SyntaxError") {
		t.Fatalf("syntax errors have no program to show, got %q / %q", out.String(), errOut.String())
	}
}
