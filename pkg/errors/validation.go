package errors

import (
	"regexp"
	"strings"
	"unicode"
)

const maxPathLength = 500

// ValidatePath checks that path names a location inside a project root: a
// non-empty relative slash path of at most 500 bytes, free of control
// characters, ".." and backslashes. Failures carry [ErrCodeInvalidPath].
func ValidatePath(path string) error {
	switch {
	case path == "":
		return New(ErrCodeInvalidPath, "path is empty")
	case len(path) > maxPathLength:
		return New(ErrCodeInvalidPath, "path longer than %d bytes", maxPathLength)
	case strings.IndexFunc(path, unicode.IsControl) >= 0:
		return New(ErrCodeInvalidPath, "path %q contains control characters", path)
	case strings.HasPrefix(path, "/"):
		return New(ErrCodeInvalidPath, "path %q is absolute", path)
	case strings.Contains(path, ".."):
		return New(ErrCodeInvalidPath, "path %q escapes the project root", path)
	case strings.Contains(path, `\`):
		return New(ErrCodeInvalidPath, "path %q contains a backslash", path)
	}
	return nil
}

var variableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateVariableName checks a build variable name from --env, an env file
// or a request body. Failures carry [ErrCodeInvalidVariable].
func ValidateVariableName(name string) error {
	if !variableName.MatchString(name) {
		return New(ErrCodeInvalidVariable, "invalid variable name %q", name)
	}
	return nil
}
