// Package plan defines the build plan handed to a build executor.
//
// A [BuildPlan] is an ordered list of [Phase] values followed by an optional
// [StartPhase]. Providers append phases in the conventional order
// setup → install → build; the start command is stored separately because
// it is not run at build time.
//
// The setup phase is the only one that carries system packages ([Pkg]) and a
// pinned nixpkgs revision so that installs are reproducible over time.
package plan

// Conventional phase names.
const (
	PhaseSetup   = "setup"
	PhaseInstall = "install"
	PhaseBuild   = "build"
)

// Pkg names an installable package in the system package repository,
// e.g. "elixir_1_13". It is opaque to stackplan.
type Pkg string

// String returns the package name.
func (p Pkg) String() string { return string(p) }

// Phase is one ordered stage of a build plan.
type Phase struct {
	Name           string   // Phase name (setup, install, build)
	Cmds           []string // Shell commands, run in order
	NixPkgs        []Pkg    // System packages (setup only)
	NixpkgsArchive string   // Pinned nixpkgs revision (setup only)
}

// Setup creates a setup phase installing pkgs.
func Setup(pkgs ...Pkg) *Phase {
	return &Phase{Name: PhaseSetup, NixPkgs: pkgs}
}

// Install creates an install phase running cmds in order.
func Install(cmds ...string) *Phase {
	return &Phase{Name: PhaseInstall, Cmds: cmds}
}

// Build creates a build phase running cmds in order.
func Build(cmds ...string) *Phase {
	return &Phase{Name: PhaseBuild, Cmds: cmds}
}

// AddCmd appends a command to the phase.
func (p *Phase) AddCmd(cmd string) {
	p.Cmds = append(p.Cmds, cmd)
}

// SetNixpkgsArchive pins the nixpkgs revision packages are resolved against.
func (p *Phase) SetNixpkgsArchive(rev string) {
	p.NixpkgsArchive = rev
}

// StartPhase describes the command that runs the built application.
type StartPhase struct {
	Cmd string
}

// NewStartPhase creates a start descriptor for cmd.
func NewStartPhase(cmd string) *StartPhase {
	return &StartPhase{Cmd: cmd}
}

// BuildPlan is the ordered set of phases returned to the build executor.
type BuildPlan struct {
	Phases []*Phase
	Start  *StartPhase
}

// New creates an empty plan.
func New() *BuildPlan {
	return &BuildPlan{}
}

// AddPhase appends p. Phases keep the order in which they were added.
func (b *BuildPlan) AddPhase(p *Phase) {
	b.Phases = append(b.Phases, p)
}

// SetStartPhase sets the start descriptor, replacing any previous one.
func (b *BuildPlan) SetStartPhase(s *StartPhase) {
	b.Start = s
}

// Phase returns the first phase with the given name.
func (b *BuildPlan) Phase(name string) (*Phase, bool) {
	for _, p := range b.Phases {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// PhaseNames returns phase names in plan order.
func (b *BuildPlan) PhaseNames() []string {
	names := make([]string, len(b.Phases))
	for i, p := range b.Phases {
		names[i] = p.Name
	}
	return names
}
