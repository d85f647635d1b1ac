// Package environment holds the user-supplied variables a build plan is
// generated against.
//
// Variables come from three places, later sources overriding earlier ones:
//
//  1. A dotenv file (see [LoadFile]), parsed with godotenv
//  2. KEY=VALUE pairs from the command line or a request body
//  3. Bare KEY entries, whose value is taken from the process environment
//
// Providers read their overrides through [Environment.ConfigVariable], which
// namespaces the lookup under [ConfigPrefix]:
//
//	env, _ := environment.FromPairs([]string{"STACKPLAN_ELIXIR_VERSION=1.13"}, os.LookupEnv)
//	v, ok := env.ConfigVariable("ELIXIR_VERSION") // "1.13", true
package environment

import (
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/matzehuels/stackplan/pkg/errors"
)

// ConfigPrefix namespaces provider configuration variables.
const ConfigPrefix = "STACKPLAN_"

// LookupFunc resolves a bare variable name, typically [os.LookupEnv].
type LookupFunc func(name string) (string, bool)

// Environment is an immutable-after-construction set of variables.
// Build it fully before sharing it between goroutines.
type Environment struct {
	vars map[string]string
}

// New creates an Environment holding a copy of vars.
func New(vars map[string]string) *Environment {
	e := &Environment{vars: make(map[string]string, len(vars))}
	for k, v := range vars {
		e.vars[k] = v
	}
	return e
}

// FromPairs parses KEY=VALUE entries. A bare KEY takes its value from lookup
// and is skipped when lookup has no value for it. A nil lookup skips every
// bare KEY.
func FromPairs(pairs []string, lookup LookupFunc) (*Environment, error) {
	e := New(nil)
	if err := e.apply(pairs, lookup); err != nil {
		return nil, err
	}
	return e, nil
}

// Load reads envFile (if non-empty) and then applies pairs on top of it.
func Load(envFile string, pairs []string, lookup LookupFunc) (*Environment, error) {
	e := New(nil)
	if envFile != "" {
		vars, err := LoadFile(envFile)
		if err != nil {
			return nil, err
		}
		for k, v := range vars {
			e.vars[k] = v
		}
	}
	if err := e.apply(pairs, lookup); err != nil {
		return nil, err
	}
	return e, nil
}

// LoadFile parses a dotenv file.
func LoadFile(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read env file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse env file %s", path)
	}
	for name := range vars {
		if err := errors.ValidateVariableName(name); err != nil {
			return nil, err
		}
	}
	return vars, nil
}

func (e *Environment) apply(pairs []string, lookup LookupFunc) error {
	for _, pair := range pairs {
		name, value, hasValue := strings.Cut(pair, "=")
		if err := errors.ValidateVariableName(name); err != nil {
			return err
		}
		if !hasValue {
			if lookup == nil {
				continue
			}
			v, ok := lookup(name)
			if !ok {
				continue
			}
			value = v
		}
		e.vars[name] = value
	}
	return nil
}

// Variable returns the value of name and whether it is set.
// An empty value still counts as set.
func (e *Environment) Variable(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	v, ok := e.vars[name]
	return v, ok
}

// ConfigVariable looks up a provider override, e.g. "ELIXIR_VERSION" is read
// from STACKPLAN_ELIXIR_VERSION.
func (e *Environment) ConfigVariable(name string) (string, bool) {
	return e.Variable(ConfigPrefix + name)
}

// Names returns the variable names in sorted order.
func (e *Environment) Names() []string {
	if e == nil {
		return nil
	}
	names := make([]string, 0, len(e.vars))
	for k := range e.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of variables.
func (e *Environment) Len() int {
	if e == nil {
		return 0
	}
	return len(e.vars)
}
