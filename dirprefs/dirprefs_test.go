package dirprefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissing(t *testing.T) {
	prefs, err := loadFrom(t.TempDir(), false)
	if err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}

	if prefs.Path != "" {
		t.Errorf("Expected empty Path, got %q", prefs.Path)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	body := "stack-name: demo-pipeline\ntemplate-file: infra/pipeline.yaml\n"
	if err := os.WriteFile(filepath.Join(dir, ".stackship.yml"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	prefs, err := loadFrom(dir, false)
	if err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}

	if prefs.StackName != "demo-pipeline" {
		t.Errorf("Expected stack name demo-pipeline, got %q", prefs.StackName)
	}

	if prefs.TemplateFile != "infra/pipeline.yaml" {
		t.Errorf("Expected template file infra/pipeline.yaml, got %q", prefs.TemplateFile)
	}

	if prefs.Path == "" {
		t.Error("Expected Path to be set")
	}
}

func TestLoadFromRecursesToParent(t *testing.T) {
	dir := t.TempDir()
	child := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(child, 0755); err != nil {
		t.Fatal(err)
	}

	body := "params-file: config/params.json\n"
	if err := os.WriteFile(filepath.Join(dir, ".stackship.yml"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	prefs, err := loadFrom(child, true)
	if err != nil {
		t.Fatalf("Expected no error, got %s", err)
	}

	if prefs.ParamsFile != "config/params.json" {
		t.Errorf("Expected params file config/params.json, got %q", prefs.ParamsFile)
	}
}

func TestLoadFromMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".stackship.yml"), []byte("{nope"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := loadFrom(dir, false)
	if err == nil {
		t.Error("Expected an error for a malformed prefs file")
	}
}
