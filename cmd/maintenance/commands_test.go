package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestValidateTaxonomy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	doc := "version: \"test-1\"\ncategories:\n  kitchen:\n    - kitchen-flooring\n    - kitchen-painting\n  bathroom:\n    - bathroom-vanity\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := runCmd(t, "validate-taxonomy", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "taxonomy test-1: 2 categories") {
		t.Fatalf("missing header in %q", out)
	}
	if strings.Index(out, "bathroom: 1 types") > strings.Index(out, "kitchen: 2 types") {
		t.Fatalf("expected sorted categories, got %q", out)
	}
}

func TestValidateTaxonomy_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := runCmd(t, "validate-taxonomy", filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})

	t.Run("no categories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		if err := os.WriteFile(path, []byte("version: \"x\"\n"), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := runCmd(t, "validate-taxonomy", path); err == nil {
			t.Fatalf("expected error for empty taxonomy")
		}
	})

	t.Run("wrong arg count", func(t *testing.T) {
		if _, err := runCmd(t, "validate-taxonomy"); err == nil {
			t.Fatalf("expected usage error")
		}
	})
}
