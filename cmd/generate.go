package cmd

import (
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/daedaleanai/multibuild/config"
	"github.com/daedaleanai/multibuild/generator"
	"github.com/daedaleanai/multibuild/log"
	"github.com/daedaleanai/multibuild/project"
	"github.com/daedaleanai/multibuild/util"
	"github.com/daedaleanai/multibuild/variant"
)

const buildDirPrefix = "build-"

func runGenerate(env *environment, cfg config.Config, opts options, projectArg string) error {
	projectDir := projectArg
	if !path.IsAbs(projectDir) {
		projectDir = path.Join(env.workingDir, projectArg)
	}
	if !util.DirExists(projectDir) {
		if _, err := os.Stat(projectDir); err != nil {
			return fmt.Errorf("directory '%s' does not exist: %w", projectDir, err)
		}
		return fmt.Errorf("directory '%s' does not exist: not a directory", projectDir)
	}

	props, err := project.Inspect(projectDir)
	if err != nil {
		return err
	}

	// The raw argument is part of the name, so that e.g. 'multibuild foo' creates 'build-foo'.
	buildDir := path.Join(env.workingDir, buildDirPrefix+projectArg)
	if util.Exists(buildDir) {
		return fmt.Errorf("build directory '%s' already exists. Delete it first", buildDir)
	}
	log.Debug("Creating build directory '%s'.\n", buildDir)
	if err := os.Mkdir(buildDir, util.DirMode); err != nil {
		return fmt.Errorf("failed to create build directory: %w", err)
	}

	buildSystem := variant.Ninja
	if opts.noNinja {
		buildSystem = variant.Make
	}
	variants := variant.Enumerate(props, variant.Options{NoSanitize: opts.noSanitize})
	log.Debug("Configurations: %s.\n", strings.Join(util.MappedSlice(variants, func(v variant.Variant) string { return v.Name }), ", "))

	runner := generator.Runner{Generator: cfg.Generator, Executor: env.executor}
	for idx, v := range variants {
		log.Progress(v.Name)
		log.IndentationLevel = 1
		ok, err := runner.Run(v, buildSystem, projectDir, buildDir)
		log.IndentationLevel = 0
		if err != nil {
			return err
		}
		if !ok {
			log.Debug("Creating configuration '%s' failed. Skipping %d remaining configurations.\n", v.Name, len(variants)-idx-1)
			return nil
		}
	}
	log.Success("Created %d configurations in '%s'.\n", len(variants), buildDir)
	return nil
}
