package types

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

const (
	msgConfigurationMissing = "missing environment variable"
	msgToolNotInstalled     = "required tool not installed"
	msgIntrospectionFailed  = "introspection failed"
	msgFrameworkNotFound    = "framework not found"
	msgMissingDependency    = "missing dependency"
)

func ConfigurationMissingError(name string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s: %s", msgConfigurationMissing, name))
}

func ToolNotInstalledError(tool string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("%s: %s", msgToolNotInstalled, tool)).
		WithCause(cause)
}

func IntrospectionFailedError(path string, cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("%s: %s", msgIntrospectionFailed, path)).
		WithCause(cause)
}

func FrameworkNotFoundError(name string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("%s: %s", msgFrameworkNotFound, name))
}

// MissingDependencyError names every missing dependency, first one first.
func MissingDependencyError(names []string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("%s: %s", msgMissingDependency, strings.Join(names, ", ")))
}

func IsMissingDependency(err error) bool {
	return hasMessagePrefix(err, errbuilder.CodeFailedPrecondition, msgMissingDependency)
}

func IsToolNotInstalled(err error) bool {
	return hasMessagePrefix(err, errbuilder.CodeFailedPrecondition, msgToolNotInstalled)
}

func IsFrameworkNotFound(err error) bool {
	return hasMessagePrefix(err, errbuilder.CodeNotFound, msgFrameworkNotFound)
}

func IsConfigurationMissing(err error) bool {
	return hasMessagePrefix(err, errbuilder.CodeInvalidArgument, msgConfigurationMissing)
}

func hasMessagePrefix(err error, code errbuilder.ErrCode, prefix string) bool {
	if err == nil || errbuilder.CodeOf(err) != code {
		return false
	}
	return strings.Contains(err.Error(), prefix)
}
