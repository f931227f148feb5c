package cmd

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/daedaleanai/multibuild/config"
	"github.com/daedaleanai/multibuild/generator"
	"github.com/daedaleanai/multibuild/log"
	"github.com/daedaleanai/multibuild/util"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// errUsage is returned when the usage text has been printed in place of an error message.
var errUsage = errors.New("usage")

type options struct {
	noSanitize bool
	noNinja    bool
}

// environment is everything the command needs from the outside world.
type environment struct {
	workingDir     string
	stdoutTerminal bool
	stderrTerminal bool
	loadConfig     func() (config.Config, error)
	executor       generator.Executor
}

func newRootCmd(env *environment, opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "multibuild <project-dir>",
		Short: "Creates out-of-tree build configurations for a CMake project",
		Long: `Creates the directory build-<project-dir> containing one CMake build directory per
configuration: GCC and Clang, each in Debug and Release mode, plus Clang builds with the
address, undefined behavior and thread sanitizers if the project's CMakeLists.txt
refers to ${SANITIZE}.`,
		Version: util.ToolVersion.String(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := env.loadConfig()
			if err != nil {
				return err
			}
			log.SetColor(cfg.UseColor(env.stdoutTerminal), cfg.UseColor(env.stderrTerminal))
			return runGenerate(env, cfg, *opts, args[0])
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.Flags().BoolVar(&opts.noSanitize, "no-sanitize", false, "Do not create sanitizer configurations")
	rootCmd.Flags().BoolVar(&opts.noNinja, "no-ninja", false, "Generate Makefiles instead of Ninja build files")
	rootCmd.Flags().BoolVarP(&log.Verbose, "verbose", "v", false, "Print debug output")
	rootCmd.SetVersionTemplate("multibuild {{.Version}}\n")

	// Unknown flags are treated like a missing project directory. Malformed flags keep their message.
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if isUnknownFlagError(err) {
			return errUsage
		}
		return err
	})
	return rootCmd
}

// pflag reports unknown flags only through its message text, e.g. "unknown flag: --foo" or
// "unknown shorthand flag: 'x' in -x".
func isUnknownFlagError(err error) bool {
	return strings.HasPrefix(err.Error(), "unknown flag: ") || strings.HasPrefix(err.Error(), "unknown shorthand flag: ")
}

// execute parses `args` and runs the command. It returns errUsage if the usage text or help was
// printed instead of doing any work.
func execute(env *environment, args []string, stdout, stderr io.Writer) error {
	opts := options{}
	rootCmd := newRootCmd(env, &opts)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	helpShown := false
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpShown = true
		defaultHelp(cmd, args)
	})

	err := rootCmd.Execute()
	if errors.Is(err, errUsage) {
		rootCmd.Usage()
		return errUsage
	}
	if err == nil && helpShown {
		return errUsage
	}
	return err
}

// Execute runs the tool on the process arguments and exits with the appropriate status.
// This is called by main.main().
func Execute() {
	stdoutTerminal := isatty.IsTerminal(os.Stdout.Fd())
	stderrTerminal := isatty.IsTerminal(os.Stderr.Fd())
	log.SetColor(stdoutTerminal, stderrTerminal)

	workingDir, err := os.Getwd()
	if err != nil {
		log.Fatal("Failed to determine the working directory: %s.\n", err)
	}

	env := &environment{
		workingDir:     workingDir,
		stdoutTerminal: stdoutTerminal,
		stderrTerminal: stderrTerminal,
		loadConfig:     config.Load,
		executor:       generator.NewProcessExecutor(),
	}
	err = execute(env, os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, errUsage) {
		os.Exit(1)
	}
	if err != nil {
		log.Fatal("%s.\n", err)
	}
}
