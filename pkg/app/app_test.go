package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/matzehuels/stackplan/pkg/errors"
)

func TestNew(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mix.exs"), []byte("defmodule X do\nend\n"), 0644); err != nil {
		t.Fatal(err)
	}

	a, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !filepath.IsAbs(a.Source) {
		t.Errorf("Source = %q, want absolute path", a.Source)
	}
	if !a.IncludesFile("mix.exs") {
		t.Error("IncludesFile(mix.exs) = false, want true")
	}

	got, err := a.ReadFile("mix.exs")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got != "defmodule X do\nend\n" {
		t.Errorf("ReadFile = %q", got)
	}
}

func TestNewInvalid(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing", filepath.Join(dir, "missing")},
		{"file", file},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.path)
			if !errors.Is(err, errors.ErrCodeInvalidPath) {
				t.Errorf("New(%q) error = %v, want %s", tt.path, err, errors.ErrCodeInvalidPath)
			}
		})
	}
}

func TestIncludesFile(t *testing.T) {
	a := NewFS("memory", fstest.MapFS{
		"mix.exs":           {Data: []byte("")},
		".elixir-version":   {Data: []byte("1.15\n")},
		"config/config.exs": {Data: []byte("")},
	})

	tests := []struct {
		name string
		want bool
	}{
		{"mix.exs", true},
		{".elixir-version", true},
		{"config/config.exs", true},
		{"config", true},
		{"Mix.exs", false},
		{"package.json", false},
		{"../mix.exs", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.IncludesFile(tt.name); got != tt.want {
				t.Errorf("IncludesFile(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestReadFileErrors(t *testing.T) {
	a := NewFS("memory", fstest.MapFS{"mix.exs": {Data: []byte("")}})

	_, err := a.ReadFile("missing.exs")
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadFile(missing) error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}

	_, err = a.ReadFile("../mix.exs")
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("ReadFile(../mix.exs) error = %v, want %s", err, errors.ErrCodeInvalidPath)
	}
}

func TestReadFileUntrimmed(t *testing.T) {
	a := NewFS("memory", fstest.MapFS{".elixir-version": {Data: []byte("  1.15\n")}})

	got, err := a.ReadFile(".elixir-version")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if got != "  1.15\n" {
		t.Errorf("ReadFile = %q, want contents unmodified", got)
	}
}
