package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	policy, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if policy.MaxPatternLength != DefaultPolicy().MaxPatternLength {
		t.Errorf("expected default MaxPatternLength, got %d", policy.MaxPatternLength)
	}
}

func TestLoadMergesUserFieldsOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.toml")
	contents := `
max_pattern_length = 3
junk_tags = ["script", "style"]
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	policy, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if policy.MaxPatternLength != 3 {
		t.Errorf("MaxPatternLength = %d, want 3", policy.MaxPatternLength)
	}
	if len(policy.JunkTags) != 2 {
		t.Errorf("JunkTags = %v, want 2 entries", policy.JunkTags)
	}
	if len(policy.AllowedAttributes) != len(DefaultPolicy().AllowedAttributes) {
		t.Error("expected AllowedAttributes to keep the default since the file didn't set it")
	}
}

func TestLoadInvalidTOMLReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("not = [valid toml"), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed TOML")
	}
}

func TestDefaultTOMLRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.toml")
	if err := os.WriteFile(path, []byte(DefaultTOML()), 0o644); err != nil {
		t.Fatalf("writing default TOML: %v", err)
	}

	policy, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error loading generated default TOML: %v", err)
	}
	if policy.MaxPatternLength != DefaultPolicy().MaxPatternLength {
		t.Errorf("MaxPatternLength = %d, want %d", policy.MaxPatternLength, DefaultPolicy().MaxPatternLength)
	}
}
