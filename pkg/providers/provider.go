package providers

import (
	"github.com/matzehuels/stackplan/pkg/plan"
)

// Source is the read-only view of a project tree that providers inspect.
// [app.App] implements it.
type Source interface {
	// IncludesFile reports whether name exists relative to the project root.
	IncludesFile(name string) bool
	// ReadFile returns the full text of name.
	ReadFile(name string) (string, error)
}

// Env supplies user configuration overrides.
// [environment.Environment] implements it.
type Env interface {
	// ConfigVariable returns the override for name, if set.
	ConfigVariable(name string) (string, bool)
}

// Provider detects one language ecosystem and plans its build.
//
// Implementations hold no per-call state and must be safe for concurrent use.
type Provider interface {
	// Name returns the provider identifier (e.g., "elixir").
	Name() string
	// Detect reports whether the project belongs to this ecosystem.
	Detect(src Source, env Env) (bool, error)
	// BuildPlan assembles the plan for a detected project. Callers only
	// invoke it after Detect returned true. A nil plan with a nil error
	// means the provider has nothing to contribute.
	BuildPlan(src Source, env Env) (*plan.BuildPlan, error)
}
