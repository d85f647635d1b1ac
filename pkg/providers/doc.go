// Package providers defines the contract shared by every language ecosystem
// that stackplan can build.
//
// # Overview
//
// A [Provider] answers two questions about a project tree:
//
//  1. Detect: does the tree belong to my ecosystem? This is normally a pure
//     existence check for a canonical manifest (mix.exs, package.json, ...).
//  2. BuildPlan: which phases build and run it? The plan always follows the
//     setup → install → build order with a separate start command.
//
// Providers see the project only through the narrow [Source] and [Env]
// interfaces, so they never touch the real file system or process
// environment directly.
//
// # Registry
//
// A [Registry] holds providers in detection order:
//
//	reg := providers.NewRegistry(elixir.Provider{})
//	p, err := reg.Detect(src, env)
//	if err != nil {
//	    return err // errors.ErrCodeNoProvider when nothing matched
//	}
//	bp, err := p.BuildPlan(src, env)
//
// The built-in set lives in [all], which exists to break the import cycle
// between this package and the provider subpackages.
//
// [all]: github.com/matzehuels/stackplan/pkg/providers/all
package providers
