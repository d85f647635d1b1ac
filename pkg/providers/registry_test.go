package providers

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/matzehuels/stackplan/pkg/errors"
	"github.com/matzehuels/stackplan/pkg/plan"
)

var _ Provider = (*mockProvider)(nil)

type mockProvider struct {
	name     string
	manifest string
	err      error
}

func (m *mockProvider) Name() string { return m.name }

func (m *mockProvider) Detect(src Source, env Env) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return src.IncludesFile(m.manifest), nil
}

func (m *mockProvider) BuildPlan(src Source, env Env) (*plan.BuildPlan, error) {
	return plan.New(), nil
}

type mockSource map[string]string

func (s mockSource) IncludesFile(name string) bool {
	_, ok := s[name]
	return ok
}

func (s mockSource) ReadFile(name string) (string, error) {
	if v, ok := s[name]; ok {
		return v, nil
	}
	return "", errors.New(errors.ErrCodeFileNotFound, "read %s", name)
}

func TestRegistryDetect(t *testing.T) {
	reg := NewRegistry(
		&mockProvider{name: "elixir", manifest: "mix.exs"},
		&mockProvider{name: "node", manifest: "package.json"},
		&mockProvider{name: "phoenix", manifest: "mix.exs"},
	)

	tests := []struct {
		name    string
		src     mockSource
		want    string
		wantErr errors.Code
	}{
		{"first match wins", mockSource{"mix.exs": "", "package.json": ""}, "elixir", ""},
		{"second provider", mockSource{"package.json": ""}, "node", ""},
		{"nothing matches", mockSource{"Gemfile": ""}, "", errors.ErrCodeNoProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := reg.Detect(tt.src, nil)
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Detect() error = %v, want %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Detect() unexpected error: %v", err)
			}
			if p.Name() != tt.want {
				t.Errorf("Detect() = %q, want %q", p.Name(), tt.want)
			}
		})
	}
}

func TestRegistryDetectError(t *testing.T) {
	cause := stderrors.New("disk on fire")
	reg := NewRegistry(
		&mockProvider{name: "broken", err: cause},
		&mockProvider{name: "elixir", manifest: "mix.exs"},
	)

	_, err := reg.Detect(mockSource{"mix.exs": ""}, nil)
	if !stderrors.Is(err, cause) {
		t.Errorf("Detect() error = %v, want wrapping %v", err, cause)
	}
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry(&mockProvider{name: "elixir"})

	if _, ok := reg.Lookup("elixir"); !ok {
		t.Error("Lookup(elixir) should succeed")
	}
	if _, ok := reg.Lookup("Elixir"); !ok {
		t.Error("Lookup should be case-insensitive")
	}

	_, err := reg.Get("cobol")
	if !errors.Is(err, errors.ErrCodeUnknownProvider) {
		t.Errorf("Get(cobol) error = %v, want %s", err, errors.ErrCodeUnknownProvider)
	}
}

func TestRegistryLookupMixedCaseName(t *testing.T) {
	node := &mockProvider{name: "Node"}
	reg := NewRegistry(node)

	for _, name := range []string{"Node", "node", "NODE"} {
		if p, ok := reg.Lookup(name); !ok || p != node {
			t.Errorf("Lookup(%q) = %v, %v; want the Node provider", name, p, ok)
		}
	}
	if got, want := reg.Names(), []string{"Node"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	replacement := &mockProvider{name: "node"}
	reg = NewRegistry(node, replacement)
	if got := reg.All(); len(got) != 1 || got[0] != replacement {
		t.Errorf("All() = %v, want only the later node provider", got)
	}
}

func TestRegistryDuplicateNames(t *testing.T) {
	first := &mockProvider{name: "elixir", manifest: "mix.exs"}
	second := &mockProvider{name: "elixir", manifest: "mix.lock"}
	reg := NewRegistry(first, &mockProvider{name: "node"}, second)

	if got, want := reg.Names(), []string{"elixir", "node"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
	if p, _ := reg.Lookup("elixir"); p != second {
		t.Error("later registration should replace earlier one")
	}
}

func TestRegistryAllIsCopy(t *testing.T) {
	reg := NewRegistry(&mockProvider{name: "elixir"})
	all := reg.All()
	all[0] = &mockProvider{name: "other"}

	if reg.Names()[0] != "elixir" {
		t.Error("All() should return a copy")
	}
}
