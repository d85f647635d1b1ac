// Package all provides the complete list of built-in providers.
//
// This package exists to break import cycles: the individual provider
// packages import pkg/providers, so pkg/providers cannot import them back.
// Consumers that need the full provider set import this package instead.
//
// Usage:
//
//	import "github.com/matzehuels/stackplan/pkg/providers/all"
//
//	reg := all.Registry()
//	p, err := reg.Detect(src, env)
package all

import (
	"github.com/matzehuels/stackplan/pkg/providers"
	"github.com/matzehuels/stackplan/pkg/providers/elixir"
)

// Providers is the canonical detection order.
var Providers = []providers.Provider{
	elixir.Provider{},
}

// Registry returns a registry holding every built-in provider.
func Registry() *providers.Registry {
	return providers.NewRegistry(Providers...)
}
