package main

import (
	"flag"
	"testing"

	"github.com/urfave/cli"
)

func testContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("region", "", "")
	set.String("stack-name", "", "")
	set.String("template-file", "", "")
	set.String("params-file", "", "")
	set.String("profile", "", "")
	set.Bool("no-validate", false, "")
	set.Bool("run-pipeline", false, "")

	if err := set.Parse(args); err != nil {
		t.Fatal(err)
	}

	return cli.NewContext(nil, set, nil)
}

func TestResolveConfigDefaults(t *testing.T) {
	cfg := resolveConfig(testContext(t))

	if cfg.StackName != defaultStackName {
		t.Errorf("Expected stack name %q, got %q", defaultStackName, cfg.StackName)
	}

	if cfg.TemplateFile != defaultTemplateFile {
		t.Errorf("Expected template file %q, got %q", defaultTemplateFile, cfg.TemplateFile)
	}

	if cfg.ParamsFile != defaultParamsFile {
		t.Errorf("Expected params file %q, got %q", defaultParamsFile, cfg.ParamsFile)
	}

	if !cfg.Validate {
		t.Error("Expected validation on by default")
	}

	if cfg.RunPipeline {
		t.Error("Expected run-pipeline off by default")
	}
}

func TestResolveConfigFlagsWin(t *testing.T) {
	cfg := resolveConfig(testContext(t,
		"--region", "eu-central-1",
		"--stack-name", "other-stack",
		"--no-validate",
		"--run-pipeline",
	))

	if cfg.Region != "eu-central-1" {
		t.Errorf("Expected region eu-central-1, got %q", cfg.Region)
	}

	if cfg.StackName != "other-stack" {
		t.Errorf("Expected stack name other-stack, got %q", cfg.StackName)
	}

	if cfg.Validate {
		t.Error("Expected --no-validate to disable validation")
	}

	if !cfg.RunPipeline {
		t.Error("Expected --run-pipeline to enable the trigger")
	}
}
