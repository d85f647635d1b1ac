package plan

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/stackplan/pkg/errors"
)

// Output formats supported by [BuildPlan.Encode].
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

type wirePlan struct {
	Phases []wirePhase `json:"phases" toml:"phases"`
	Start  *wireStart  `json:"start,omitempty" toml:"start,omitempty"`
}

type wirePhase struct {
	Name           string   `json:"name" toml:"name"`
	Cmds           []string `json:"cmds,omitempty" toml:"cmds,omitempty"`
	NixPkgs        []string `json:"nixPkgs,omitempty" toml:"nixPkgs,omitempty"`
	NixpkgsArchive string   `json:"nixpkgsArchive,omitempty" toml:"nixpkgsArchive,omitempty"`
}

type wireStart struct {
	Cmd string `json:"cmd" toml:"cmd"`
}

func (b *BuildPlan) wire() wirePlan {
	out := wirePlan{Phases: make([]wirePhase, len(b.Phases))}
	for i, p := range b.Phases {
		wp := wirePhase{
			Name:           p.Name,
			Cmds:           p.Cmds,
			NixpkgsArchive: p.NixpkgsArchive,
		}
		for _, pkg := range p.NixPkgs {
			wp.NixPkgs = append(wp.NixPkgs, pkg.String())
		}
		out.Phases[i] = wp
	}
	if b.Start != nil {
		out.Start = &wireStart{Cmd: b.Start.Cmd}
	}
	return out
}

// MarshalJSON encodes the plan in its wire shape.
func (b *BuildPlan) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.wire())
}

// WriteJSON encodes the plan as indented JSON.
func (b *BuildPlan) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b.wire()); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes the plan as TOML, one [[phases]] table per phase.
func (b *BuildPlan) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(b.wire()); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Encode writes the plan in the named format.
func (b *BuildPlan) Encode(w io.Writer, format string) error {
	switch format {
	case FormatTOML:
		return b.WriteTOML(w)
	case FormatJSON:
		return b.WriteJSON(w)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (available: %s, %s)", format, FormatTOML, FormatJSON)
	}
}

// Digest returns the SHA-256 of the plan's compact JSON form. Equal plans
// have equal digests, so it can key downstream build caches.
func (b *BuildPlan) Digest() (string, error) {
	data, err := json.Marshal(b.wire())
	if err != nil {
		return "", fmt.Errorf("encode: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
