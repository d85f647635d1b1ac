// Package pkg holds the stackplan libraries.
//
// A plan is produced in four steps, each owned by one package:
//
//  1. [app] opens the project tree, [environment] collects build variables
//  2. [providers] picks the first provider whose manifest is present
//  3. the provider (e.g. [providers/elixir]) resolves a runtime package and
//     assembles the phases of a [plan.BuildPlan]
//  4. [plan] encodes the result as TOML or JSON
//
// [pipeline] wires these together, reporting timings through [observability]:
//
//	runner := pipeline.NewRunner(nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{Source: "./my-app"})
//	if err != nil {
//	    return err
//	}
//	return result.Plan.WriteTOML(os.Stdout)
//
// [app]: https://pkg.go.dev/github.com/matzehuels/stackplan/pkg/app
// [environment]: https://pkg.go.dev/github.com/matzehuels/stackplan/pkg/environment
// [providers]: https://pkg.go.dev/github.com/matzehuels/stackplan/pkg/providers
// [providers/elixir]: https://pkg.go.dev/github.com/matzehuels/stackplan/pkg/providers/elixir
// [plan]: https://pkg.go.dev/github.com/matzehuels/stackplan/pkg/plan
// [plan.BuildPlan]: https://pkg.go.dev/github.com/matzehuels/stackplan/pkg/plan#BuildPlan
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/stackplan/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/stackplan/pkg/observability
package pkg
