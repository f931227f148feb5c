package project

import (
	"fmt"
	"io/ioutil"
	"path"
	"strings"

	"github.com/daedaleanai/multibuild/log"
)

// BuildScriptFileName is the name of the project's top-level build script.
const BuildScriptFileName = "CMakeLists.txt"

// SanitizeMarker is the token a build script uses to opt into sanitizer builds.
const SanitizeMarker = "${SANITIZE}"

// Properties describes what a project supports.
type Properties struct {
	SupportsSanitize bool

	// Revision and Dirty describe the git checkout the project lives in. They are only
	// determined when debug output is enabled.
	Revision string
	Dirty    bool
}

// Inspect reads the build script in `projectDir` and reports the project's properties.
func Inspect(projectDir string) (Properties, error) {
	buildScriptPath := path.Join(projectDir, BuildScriptFileName)
	log.Debug("Reading build script '%s'.\n", buildScriptPath)

	content, err := ioutil.ReadFile(buildScriptPath)
	if err != nil {
		return Properties{}, fmt.Errorf("failed to read '%s': %w", buildScriptPath, err)
	}

	props := Properties{
		SupportsSanitize: strings.Contains(string(content), SanitizeMarker),
	}
	if props.SupportsSanitize {
		log.Debug("Build script contains '%s'. Sanitizer configurations are supported.\n", SanitizeMarker)
	} else {
		log.Debug("Build script does not contain '%s'. Sanitizer configurations are not supported.\n", SanitizeMarker)
	}

	if log.Verbose {
		props.Revision, props.Dirty = revision(projectDir)
	}
	return props, nil
}
