package generator

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

// Executor runs a program to completion in a given working directory.
type Executor interface {
	// Execute returns the program's exit status. An error means the program could not be run.
	Execute(dir string, name string, args ...string) (int, error)
}

// ProcessExecutor runs programs as subprocesses sharing the given output streams.
type ProcessExecutor struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewProcessExecutor returns an Executor that inherits the standard streams of this process.
func NewProcessExecutor() ProcessExecutor {
	return ProcessExecutor{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (e ProcessExecutor) Execute(dir string, name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return -1, err
	}
	return 0, nil
}
