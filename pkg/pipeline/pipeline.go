// Package pipeline runs detection and plan generation for a project.
//
// This package is the single entry point shared by the CLI and the HTTP
// server, so both resolve environments, select providers, and log in the same
// way.
//
// # Stages
//
//  1. Open: the project directory becomes an [app.App]
//  2. Environment: dotenv file and KEY=VALUE pairs become an [environment.Environment]
//  3. Detect: the registry picks the first matching provider (or the one named in Options.Provider)
//  4. Plan: the provider assembles the [plan.BuildPlan]
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source: "./my-app",
//	    Env:    []string{"STACKPLAN_ELIXIR_VERSION=1.13"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result.Plan.WriteTOML(os.Stdout)
//
// [app.App]: github.com/matzehuels/stackplan/pkg/app.App
// [environment.Environment]: github.com/matzehuels/stackplan/pkg/environment.Environment
// [plan.BuildPlan]: github.com/matzehuels/stackplan/pkg/plan.BuildPlan
package pipeline

import (
	"io/fs"
	"time"

	"github.com/matzehuels/stackplan/pkg/environment"
	"github.com/matzehuels/stackplan/pkg/errors"
	"github.com/matzehuels/stackplan/pkg/plan"
)

// Options configures a single pipeline run.
type Options struct {
	Source   string                 // Project directory (required)
	FS       fs.FS                  // Serves the project instead of opening Source
	Provider string                 // Force a provider by name, skipping detection
	EnvFile  string                 // Optional dotenv file
	Env      []string               // KEY=VALUE or bare KEY entries
	Lookup   environment.LookupFunc // Resolves bare KEY entries (nil skips them)
}

// Validate checks that required options are set.
func (o Options) Validate() error {
	if o.Source == "" {
		return errors.New(errors.ErrCodeInvalidInput, "source directory is required")
	}
	return nil
}

// Result holds the outcome of a pipeline run.
type Result struct {
	Source   string          // Absolute project directory
	Provider string          // Name of the provider that produced Plan
	Plan     *plan.BuildPlan // The generated plan (nil for detect-only runs)
	Stats    Stats
}

// Stats records stage timings.
type Stats struct {
	DetectTime time.Duration
	PlanTime   time.Duration
}
