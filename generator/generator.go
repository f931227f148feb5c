package generator

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/daedaleanai/multibuild/log"
	"github.com/daedaleanai/multibuild/util"
	"github.com/daedaleanai/multibuild/variant"
)

// Runner creates one configuration directory per variant and runs the generator in it.
type Runner struct {
	// Generator is the executable to invoke, e.g. "cmake".
	Generator string
	Executor  Executor
}

// Run creates the directory for `v` inside `buildDir` and runs the generator for `projectDir` in it.
// It reports whether the generator succeeded. Errors are returned only if the directory could not
// be created or the generator could not be started.
func (r Runner) Run(v variant.Variant, buildSystem variant.BuildSystem, projectDir, buildDir string) (bool, error) {
	configDir := path.Join(buildDir, v.Name)
	if err := os.Mkdir(configDir, util.DirMode); err != nil {
		return false, fmt.Errorf("failed to create configuration directory: %w", err)
	}

	args := append([]string{projectDir}, v.GeneratorArgs(buildSystem)...)
	log.Debug("Running generator command in '%s': '%s %s'\n", configDir, r.Generator, strings.Join(args, " "))

	status, err := r.Executor.Execute(configDir, r.Generator, args...)
	if err != nil {
		return false, fmt.Errorf("failed to run '%s': %w", r.Generator, err)
	}
	if status != 0 {
		log.Debug("Generator exited with status %d.\n", status)
		return false, nil
	}
	return true, nil
}
