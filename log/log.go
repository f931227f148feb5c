package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
)

// Verbose controls whether debug messages are being printed.
var Verbose bool

// IndentationLevel controls the amount of indentation of log messages.
var IndentationLevel = 0

// Spinner is shown while a long-running step produces no output of its own.
var Spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)

var logColor = true

var progressColor = true

var stdout io.Writer = os.Stdout

var logger = logrus.New()

const (
	ansiReset      = "\033[0m"
	ansiRed        = "\033[31m"
	ansiGreen      = "\033[32m"
	ansiYellow     = "\033[33m"
	ansiCyan       = "\033[36m"
	ansiBoldGreen  = "\033[1;32m"
	ansiBoldYellow = "\033[1;33m"
	ansiBoldWhite  = "\033[1;37m"
)

func init() {
	logger.Out = os.Stderr
	logger.Formatter = &formatter{}
	logger.Level = logrus.DebugLevel
	Spinner.Writer = os.Stderr
}

// formatter renders entries the way the tool has always printed them: an indentation
// followed by an optional coloured prefix. The message carries its own line breaks.
type formatter struct{}

func (f *formatter) Format(entry *logrus.Entry) ([]byte, error) {
	indent, _ := entry.Data["indent"].(int)
	prefix := ""
	switch entry.Level {
	case logrus.DebugLevel:
		prefix = paint(logColor, ansiCyan, "Debug: ")
	case logrus.InfoLevel:
		prefix = paint(logColor, ansiGreen, "Success: ")
	case logrus.WarnLevel:
		prefix = paint(logColor, ansiYellow, "Warning: ")
	case logrus.ErrorLevel:
		prefix = paint(logColor, ansiRed, "Error: ")
	}
	return []byte(strings.Repeat("  ", indent) + prefix + entry.Message), nil
}

func paint(enabled bool, code, text string) string {
	if !enabled {
		return text
	}
	return code + text + ansiReset
}

func entry() *logrus.Entry {
	return logger.WithField("indent", IndentationLevel)
}

// SetOutput redirects log messages (w) and progress lines (progress).
func SetOutput(w io.Writer, progress io.Writer) {
	logger.Out = w
	Spinner.Writer = w
	stdout = progress
}

// SetColor enables or disables ANSI colours in progress lines and in log messages.
func SetColor(progress, logs bool) {
	progressColor = progress
	logColor = logs
}

// Debug prints an indented and formatted debug message to os.Stderr if verbose output is selected.
func Debug(format string, a ...interface{}) {
	if Verbose {
		entry().Debugf(format, a...)
	}
}

// Success prints an indented and formatted success message to os.Stderr.
func Success(format string, a ...interface{}) {
	entry().Infof(format, a...)
}

// Warning prints an indented and formatted warning to os.Stderr.
func Warning(format string, a ...interface{}) {
	entry().Warnf(format, a...)
}

// Error prints an indented and formatted error message to os.Stderr.
func Error(format string, a ...interface{}) {
	entry().Errorf(format, a...)
}

// Fatal prints an indented and formatted error message to os.Stderr and terminates the program.
func Fatal(format string, a ...interface{}) {
	Error(format, a...)
	fmt.Fprint(logger.Out, paint(logColor, ansiRed, "A fatal error occured. Exiting...")+"\n")
	os.Exit(1)
}

// Progress announces on stdout that the configuration `name` is being created.
func Progress(name string) {
	fmt.Fprintf(stdout, "%s %s %s %s\n",
		paint(progressColor, ansiBoldGreen, "==="),
		paint(progressColor, ansiBoldWhite, "Creating configuration for"),
		paint(progressColor, ansiBoldYellow, name),
		paint(progressColor, ansiBoldGreen, "==="))
}
