package elixir

import (
	"fmt"

	"github.com/matzehuels/stackplan/pkg/plan"
	"github.com/matzehuels/stackplan/pkg/providers"
)

const (
	// Name is the provider identifier.
	Name = "elixir"

	// NixpkgsArchive pins the nixpkgs revision the Elixir packages below
	// are resolved against.
	NixpkgsArchive = "ef99fa5c5ed624460217c31ac4271cfb5cb2502c"

	manifestFile = "mix.exs"
	versionFile  = ".elixir-version"
)

var (
	// installCmds bootstrap hex and rebar before fetching dependencies.
	installCmds = []string{
		"mix local.hex --force",
		"mix local.rebar --force",
		"mix deps.get",
	}
	buildCmd = "mix compile"
	startCmd = "mix run --no-halt"
)

// Provider builds Mix projects.
type Provider struct{}

var _ providers.Provider = Provider{}

func (Provider) Name() string { return Name }

// Detect reports whether mix.exs exists in the project root.
func (Provider) Detect(src providers.Source, _ providers.Env) (bool, error) {
	return src.IncludesFile(manifestFile), nil
}

// BuildPlan returns setup, install and build phases plus a resident start
// command. Every phase is always present.
func (Provider) BuildPlan(src providers.Source, env providers.Env) (*plan.BuildPlan, error) {
	pkg, err := resolvePackage(src, env)
	if err != nil {
		return nil, fmt.Errorf("resolve elixir package: %w", err)
	}

	bp := plan.New()

	setup := plan.Setup(pkg)
	setup.SetNixpkgsArchive(NixpkgsArchive)
	bp.AddPhase(setup)

	bp.AddPhase(plan.Install(append([]string(nil), installCmds...)...))
	bp.AddPhase(plan.Build(buildCmd))
	bp.SetStartPhase(plan.NewStartPhase(startCmd))

	return bp, nil
}
