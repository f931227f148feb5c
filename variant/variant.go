package variant

import (
	"fmt"

	"github.com/daedaleanai/multibuild/project"
)

// Compiler selects the C and C++ toolchain of a configuration.
type Compiler uint

const (
	GCC Compiler = iota
	Clang
)

func (c Compiler) String() string {
	switch c {
	case GCC:
		return "GCC"
	case Clang:
		return "Clang"
	}
	panic(fmt.Sprintf("unknown compiler %d", uint(c)))
}

// Args returns the generator definitions selecting the C and C++ compilers.
func (c Compiler) Args() [2]string {
	switch c {
	case GCC:
		return [2]string{"-DCMAKE_C_COMPILER=gcc", "-DCMAKE_CXX_COMPILER=g++"}
	case Clang:
		return [2]string{"-DCMAKE_C_COMPILER=clang", "-DCMAKE_CXX_COMPILER=clang++"}
	}
	panic(fmt.Sprintf("unknown compiler %d", uint(c)))
}

// BuildType selects optimization and debug information.
type BuildType uint

const (
	Debug BuildType = iota
	Release
)

func (b BuildType) String() string {
	switch b {
	case Debug:
		return "Debug"
	case Release:
		return "Release"
	}
	panic(fmt.Sprintf("unknown build type %d", uint(b)))
}

// Arg returns the generator definition selecting the build type.
func (b BuildType) Arg() string {
	return "-DCMAKE_BUILD_TYPE=" + b.String()
}

// BuildSystem selects the build system the generator writes files for.
type BuildSystem uint

const (
	Ninja BuildSystem = iota
	Make
)

func (b BuildSystem) String() string {
	switch b {
	case Ninja:
		return "Ninja"
	case Make:
		return "Make"
	}
	panic(fmt.Sprintf("unknown build system %d", uint(b)))
}

// Arg returns the generator selection flag.
func (b BuildSystem) Arg() string {
	switch b {
	case Ninja:
		return "-GCodeBlocks - Ninja"
	case Make:
		return "-GCodeBlocks - Unix Makefiles"
	}
	panic(fmt.Sprintf("unknown build system %d", uint(b)))
}

// Sanitizer is a compiler instrumentation mode enabled through the project's SANITIZE variable.
type Sanitizer uint

const (
	Address Sanitizer = iota
	Undefined
	Thread
)

var sanitizers = []Sanitizer{Address, Undefined, Thread}

// Suffix is the part of the configuration name identifying the sanitizer.
func (s Sanitizer) Suffix() string {
	switch s {
	case Address:
		return "Asan"
	case Undefined:
		return "Ubsan"
	case Thread:
		return "Tsan"
	}
	panic(fmt.Sprintf("unknown sanitizer %d", uint(s)))
}

// Arg returns the generator definition selecting the sanitizer.
func (s Sanitizer) Arg() string {
	switch s {
	case Address:
		return "-DSANITIZE=address"
	case Undefined:
		return "-DSANITIZE=undefined"
	case Thread:
		return "-DSANITIZE=thread"
	}
	panic(fmt.Sprintf("unknown sanitizer %d", uint(s)))
}

// Variant is a single build configuration. It is never modified after construction.
type Variant struct {
	Name      string
	Compiler  Compiler
	BuildType BuildType
	ExtraArgs []string
}

// New creates the variant named "<compiler>-<suffix>".
func New(suffix string, compiler Compiler, buildType BuildType, extraArgs ...string) Variant {
	return Variant{
		Name:      fmt.Sprintf("%s-%s", compiler, suffix),
		Compiler:  compiler,
		BuildType: buildType,
		ExtraArgs: append([]string{}, extraArgs...),
	}
}

// GeneratorArgs returns the arguments passed to the generator after the project directory.
func (v Variant) GeneratorArgs(buildSystem BuildSystem) []string {
	compilerArgs := v.Compiler.Args()
	args := []string{buildSystem.Arg(), compilerArgs[0], compilerArgs[1], v.BuildType.Arg()}
	return append(args, v.ExtraArgs...)
}

// Options are the caller's choices affecting which variants are enumerated.
type Options struct {
	NoSanitize bool
}

// Enumerate returns all variants to create for a project, in creation order.
func Enumerate(props project.Properties, opts Options) []Variant {
	variants := []Variant{
		New(Debug.String(), GCC, Debug),
		New(Release.String(), GCC, Release),
		New(Debug.String(), Clang, Debug),
		New(Release.String(), Clang, Release),
	}
	if !props.SupportsSanitize || opts.NoSanitize {
		return variants
	}
	for _, sanitizer := range sanitizers {
		variants = append(variants, New(sanitizer.Suffix(), Clang, Debug, sanitizer.Arg()))
	}
	return variants
}
