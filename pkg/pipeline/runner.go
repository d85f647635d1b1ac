package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackplan/pkg/app"
	"github.com/matzehuels/stackplan/pkg/environment"
	"github.com/matzehuels/stackplan/pkg/errors"
	"github.com/matzehuels/stackplan/pkg/observability"
	"github.com/matzehuels/stackplan/pkg/providers"
	"github.com/matzehuels/stackplan/pkg/providers/all"
)

// Runner executes the pipeline against a provider registry.
//
// The Runner keeps no per-run state, so multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Registry *providers.Registry
	Logger   *log.Logger
}

// NewRunner creates a runner.
// If reg is nil, the built-in providers are used.
// If logger is nil, log.Default() is used.
func NewRunner(reg *providers.Registry, logger *log.Logger) *Runner {
	if reg == nil {
		reg = all.Registry()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Registry: reg, Logger: logger}
}

// Execute opens the project, selects a provider, and generates its plan.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	src, env, err := r.prepare(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Source: src.Source}

	detectStart := time.Now()
	p, err := r.selectProvider(ctx, src, env, opts.Provider)
	result.Stats.DetectTime = time.Since(detectStart)
	if err != nil {
		return nil, err
	}
	result.Provider = p.Name()

	planStart := time.Now()
	observability.Plan().OnPlanStart(ctx, src.Source, p.Name())
	bp, err := p.BuildPlan(src, env)
	if err == nil && bp == nil {
		err = errors.New(errors.ErrCodeNoProvider, "provider %s produced no plan", p.Name())
	}
	result.Stats.PlanTime = time.Since(planStart)
	phaseCount := 0
	if bp != nil {
		phaseCount = len(bp.Phases)
	}
	observability.Plan().OnPlanComplete(ctx, src.Source, p.Name(), phaseCount, result.Stats.PlanTime, err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name(), err)
	}
	result.Plan = bp

	r.Logger.Debug("generated plan",
		"provider", p.Name(),
		"path", src.Source,
		"phases", bp.PhaseNames(),
		"duration", result.Stats.PlanTime)

	return result, nil
}

// Detect reports which provider matches the project without building a plan.
func (r *Runner) Detect(ctx context.Context, opts Options) (*Result, error) {
	src, env, err := r.prepare(ctx, opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	p, err := r.selectProvider(ctx, src, env, opts.Provider)
	if err != nil {
		return nil, err
	}
	return &Result{
		Source:   src.Source,
		Provider: p.Name(),
		Stats:    Stats{DetectTime: time.Since(start)},
	}, nil
}

func (r *Runner) prepare(ctx context.Context, opts Options) (*app.App, *environment.Environment, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}

	src, err := openSource(opts)
	if err != nil {
		return nil, nil, err
	}

	env, err := environment.Load(opts.EnvFile, opts.Env, opts.Lookup)
	if err != nil {
		return nil, nil, err
	}
	r.Logger.Debug("loaded environment", "path", src.Source, "variables", env.Len())

	return src, env, nil
}

func openSource(opts Options) (*app.App, error) {
	if opts.FS != nil {
		return app.NewFS(opts.Source, opts.FS), nil
	}
	return app.New(opts.Source)
}

func (r *Runner) selectProvider(ctx context.Context, src *app.App, env *environment.Environment, name string) (providers.Provider, error) {
	if name != "" {
		p, err := r.Registry.Get(name)
		if err != nil {
			return nil, err
		}
		r.Logger.Debug("using requested provider", "provider", p.Name())
		return p, nil
	}

	start := time.Now()
	observability.Plan().OnDetectStart(ctx, src.Source)
	p, err := r.Registry.Detect(src, env)
	provider := ""
	if p != nil {
		provider = p.Name()
	}
	observability.Plan().OnDetectComplete(ctx, src.Source, provider, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("detected provider", "provider", provider, "path", src.Source)
	return p, nil
}
