package generator

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/daedaleanai/multibuild/util"
	"github.com/daedaleanai/multibuild/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type invocation struct {
	dir  string
	name string
	args []string
}

type fakeExecutor struct {
	invocations []invocation
	status      int
	err         error
}

func (e *fakeExecutor) Execute(dir string, name string, args ...string) (int, error) {
	e.invocations = append(e.invocations, invocation{dir, name, args})
	return e.status, e.err
}

func TestRunCreatesDirectoryAndInvokesGenerator(t *testing.T) {
	buildDir := t.TempDir()
	executor := &fakeExecutor{}
	runner := Runner{Generator: "cmake", Executor: executor}

	v := variant.New("Asan", variant.Clang, variant.Debug, "-DSANITIZE=address")
	ok, err := runner.Run(v, variant.Ninja, "/src/project", buildDir)
	require.NoError(t, err)
	assert.True(t, ok)

	configDir := filepath.Join(buildDir, "Clang-Asan")
	assert.True(t, util.DirExists(configDir))
	require.Len(t, executor.invocations, 1)
	assert.Equal(t, invocation{
		dir:  configDir,
		name: "cmake",
		args: []string{
			"/src/project",
			"-GCodeBlocks - Ninja",
			"-DCMAKE_C_COMPILER=clang",
			"-DCMAKE_CXX_COMPILER=clang++",
			"-DCMAKE_BUILD_TYPE=Debug",
			"-DSANITIZE=address",
		},
	}, executor.invocations[0])
}

func TestRunReportsGeneratorFailure(t *testing.T) {
	buildDir := t.TempDir()
	runner := Runner{Generator: "cmake", Executor: &fakeExecutor{status: 1}}

	ok, err := runner.Run(variant.New("Debug", variant.GCC, variant.Debug), variant.Make, "/src", buildDir)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, util.DirExists(filepath.Join(buildDir, "GCC-Debug")))
}

func TestRunFailsIfDirectoryExists(t *testing.T) {
	buildDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(buildDir, "GCC-Release"), 0775))
	executor := &fakeExecutor{}
	runner := Runner{Generator: "cmake", Executor: executor}

	_, err := runner.Run(variant.New("Release", variant.GCC, variant.Release), variant.Ninja, "/src", buildDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrExist)
	assert.Empty(t, executor.invocations)
}

func TestRunFailsIfGeneratorCannotStart(t *testing.T) {
	runner := Runner{Generator: "cmake", Executor: &fakeExecutor{status: -1, err: errors.New("executable file not found")}}

	_, err := runner.Run(variant.New("Debug", variant.GCC, variant.Debug), variant.Ninja, "/src", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cmake")
}

func TestProcessExecutor(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	executor := ProcessExecutor{Stdout: &stdout, Stderr: &stderr}

	status, err := executor.Execute(dir, "sh", "-c", "pwd -P; echo oops >&2")
	require.NoError(t, err)
	assert.Equal(t, 0, status)
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, resolved+"\n", stdout.String())
	assert.Equal(t, "oops\n", stderr.String())

	status, err = executor.Execute(dir, "sh", "-c", "exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, status)

	_, err = executor.Execute(dir, filepath.Join(dir, "no-such-generator"))
	assert.Error(t, err)
}

func TestProcessExecutorKeepsWorkingDirectory(t *testing.T) {
	before, err := os.Getwd()
	require.NoError(t, err)

	_, err = NewProcessExecutor().Execute(t.TempDir(), "true")
	require.NoError(t, err)

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
