package environment

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/stackplan/pkg/errors"
)

func lookupFrom(m map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := m[name]
		return v, ok
	}
}

func TestFromPairs(t *testing.T) {
	lookup := lookupFrom(map[string]string{"FROM_HOST": "host-value"})

	env, err := FromPairs([]string{
		"STACKPLAN_ELIXIR_VERSION=1.13",
		"EMPTY=",
		"WITH_EQUALS=a=b",
		"FROM_HOST",
		"MISSING_ON_HOST",
	}, lookup)
	if err != nil {
		t.Fatalf("FromPairs failed: %v", err)
	}

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"STACKPLAN_ELIXIR_VERSION", "1.13", true},
		{"EMPTY", "", true},
		{"WITH_EQUALS", "a=b", true},
		{"FROM_HOST", "host-value", true},
		{"MISSING_ON_HOST", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := env.Variable(tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Variable(%q) = (%q, %v), want (%q, %v)", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFromPairsInvalidName(t *testing.T) {
	_, err := FromPairs([]string{"BAD-NAME=1"}, nil)
	if !errors.Is(err, errors.ErrCodeInvalidVariable) {
		t.Errorf("FromPairs error = %v, want %s", err, errors.ErrCodeInvalidVariable)
	}
}

func TestConfigVariable(t *testing.T) {
	env := New(map[string]string{
		"STACKPLAN_ELIXIR_VERSION": "1.15",
		"ELIXIR_VERSION":           "1.9",
	})

	got, ok := env.ConfigVariable("ELIXIR_VERSION")
	if !ok || got != "1.15" {
		t.Errorf("ConfigVariable = (%q, %v), want (%q, true)", got, ok, "1.15")
	}

	if _, ok := env.ConfigVariable("NODE_VERSION"); ok {
		t.Error("ConfigVariable(NODE_VERSION) should be unset")
	}
}

func TestNilEnvironment(t *testing.T) {
	var env *Environment
	if _, ok := env.ConfigVariable("ELIXIR_VERSION"); ok {
		t.Error("nil Environment should have no variables")
	}
	if env.Len() != 0 || env.Names() != nil {
		t.Error("nil Environment should be empty")
	}
}

func TestNewCopies(t *testing.T) {
	vars := map[string]string{"A": "1"}
	env := New(vars)
	vars["A"] = "2"

	if got, _ := env.Variable("A"); got != "1" {
		t.Errorf("Variable(A) = %q, want %q", got, "1")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := `# build settings
STACKPLAN_ELIXIR_VERSION=1.12
MIX_ENV=prod
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	env, err := Load(path, []string{"STACKPLAN_ELIXIR_VERSION=1.13"}, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got, _ := env.ConfigVariable("ELIXIR_VERSION"); got != "1.13" {
		t.Errorf("pairs should override env file: got %q, want %q", got, "1.13")
	}
	if got, _ := env.Variable("MIX_ENV"); got != "prod" {
		t.Errorf("Variable(MIX_ENV) = %q, want %q", got, "prod")
	}

	want := []string{"MIX_ENV", "STACKPLAN_ELIXIR_VERSION"}
	if got := env.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"), nil, nil)
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}
