package elixir

import (
	"regexp"
	"strings"

	"github.com/matzehuels/stackplan/pkg/plan"
	"github.com/matzehuels/stackplan/pkg/providers"
)

// DefaultPackage is used whenever no supported version can be determined.
const DefaultPackage plan.Pkg = "elixir"

// versionVariable is read through Env.ConfigVariable.
const versionVariable = "ELIXIR_VERSION"

const wildcard = "_"

type release struct{ major, minor string }

// packages lists the supported minor releases. The unsuffixed "elixir"
// package tracks 1.14 in the pinned archive.
var packages = map[release]plan.Pkg{
	{"1", "9"}:  "elixir_1_9",
	{"1", "10"}: "elixir_1_10",
	{"1", "11"}: "elixir_1_11",
	{"1", "12"}: "elixir_1_12",
	{"1", "13"}: "elixir_1_13",
	{"1", "14"}: "elixir",
	{"1", "15"}: "elixir_1_15",
}

// space matches the Unicode White_Space property; RE2's \s is ASCII only.
const space = `\s\v\p{Z}\x{85}`

var (
	// mixVersionPattern finds the version requirement in a project's
	// keyword list, e.g. `elixir: "~> 1.13",`.
	mixVersionPattern = regexp.MustCompile(`(elixir:[` + space + `].*[> ])([0-9|\.]*)`)

	// versionPattern splits "1.13", "v1.13.4", "'1.9'" into major and minor.
	versionPattern = regexp.MustCompile(`^(?:[` + space + `a-zA-Z"'-]*)(\d*)(?:\.*)(\d*)(?:\.*\d*)(?:["']?)$`)
)

// resolvePackage picks the Elixir package for the project. The first
// available hint wins: the ELIXIR_VERSION override, then .elixir-version,
// then the requirement in mix.exs. Anything that does not map onto a
// supported release falls back to DefaultPackage.
func resolvePackage(src providers.Source, env providers.Env) (plan.Pkg, error) {
	hint, ok, err := versionHint(src, env)
	if err != nil {
		return "", err
	}
	if !ok {
		return DefaultPackage, nil
	}
	return packageFor(hint), nil
}

func versionHint(src providers.Source, env providers.Env) (string, bool, error) {
	if env != nil {
		if v, ok := env.ConfigVariable(versionVariable); ok {
			return v, true, nil
		}
	}

	// A pin file wins even when it is blank; it is trimmed only when parsed.
	if src.IncludesFile(versionFile) {
		v, err := src.ReadFile(versionFile)
		if err != nil {
			return "", false, err
		}
		return v, true, nil
	}

	mix, err := src.ReadFile(manifestFile)
	if err != nil {
		return "", false, err
	}
	m := mixVersionPattern.FindStringSubmatch(mix)
	if m == nil {
		return "", false, nil
	}
	return m[2], true, nil
}

func packageFor(hint string) plan.Pkg {
	major, minor, ok := parseVersion(hint)
	if !ok {
		return DefaultPackage
	}
	if pkg, ok := packages[release{major, minor}]; ok {
		return pkg
	}
	return DefaultPackage
}

// parseVersion returns the major and minor components of hint. Missing
// components are reported as the wildcard "_".
func parseVersion(hint string) (major, minor string, ok bool) {
	m := versionPattern.FindStringSubmatch(strings.TrimSpace(hint))
	if m == nil {
		return "", "", false
	}
	return orWildcard(m[1]), orWildcard(m[2]), true
}

func orWildcard(s string) string {
	if s == "" {
		return wildcard
	}
	return s
}
