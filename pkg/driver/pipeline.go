package driver

import (
	"fmt"
	"os"

	"github.com/iaminfinityiq/architect/pkg/ast"
	"github.com/iaminfinityiq/architect/pkg/interpreter"
	"github.com/iaminfinityiq/architect/pkg/parser"
	"github.com/iaminfinityiq/architect/pkg/runtime"
)

// Result captures the outcome of running a program.
type Result struct {
	Program     *ast.Program
	Value       runtime.Value
	ProgramText string
	ResultText  string
}

// Run executes source against a fresh root environment.
func Run(source string) (*Result, error) {
	return Execute(source, runtime.NewEnvironment(nil))
}

// Execute tokenizes, parses and evaluates source in env. When evaluation
// fails after a successful parse, the returned Result still carries the
// program so callers can render it alongside the error.
func Execute(source string, env *runtime.Environment) (*Result, error) {
	program, err := parser.ParseSource(source)
	if err != nil {
		return nil, err
	}
	res := &Result{Program: program, ProgramText: program.String()}
	val, err := interpreter.NewWithEnvironment(env).EvaluateProgram(program)
	if err != nil {
		return res, err
	}
	res.Value = val
	res.ResultText = val.String()
	return res, nil
}

// ReadScript loads a program file from disk.
func ReadScript(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// RunFile reads and runs the script at path.
func RunFile(path string) (*Result, error) {
	source, err := ReadScript(path)
	if err != nil {
		return nil, err
	}
	return Run(source)
}
