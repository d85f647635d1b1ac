// Package elixir plans builds for Elixir projects managed by Mix.
//
// # Detection
//
// A project is an Elixir project when mix.exs exists in its root.
//
// # Version Resolution
//
// The Elixir package is chosen from the first hint found:
//
//  1. The STACKPLAN_ELIXIR_VERSION variable
//  2. The contents of .elixir-version
//  3. The `elixir: "~> x.y"` requirement in mix.exs
//
// Hints are reduced to major.minor and mapped onto the packages available in
// the pinned nixpkgs archive (1.9 through 1.15). Anything else, including an
// unparseable hint, falls back to the generic "elixir" package rather than
// failing the build.
//
// # Plan
//
//	setup    elixir_1_13 (nixpkgs ef99fa5c5ed6...)
//	install  mix local.hex --force
//	         mix local.rebar --force
//	         mix deps.get
//	build    mix compile
//	start    mix run --no-halt
package elixir
