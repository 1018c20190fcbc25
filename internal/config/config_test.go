package config

import (
	"strings"
	"testing"
)

func TestLoadArgsFlagDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Repository != "" || cfg.App.Revset != "" {
		t.Fatalf("unexpected defaults: %+v", cfg.App)
	}
	if !cfg.App.ShowFooter {
		t.Fatal("footer should default on")
	}
	if cfg.Logging.Trace || cfg.Features.Verbose {
		t.Fatalf("trace/verbose should default off: %+v", cfg)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	environ := []string{
		"JJCONSOLE_REPOSITORY=/env/repo",
		"JJCONSOLE_REVSET=trunk()",
		"JJCONSOLE_WIDTH=120",
		"JJCONSOLE_FOOTER=false",
		"JJCONSOLE_TRACE=true",
	}
	cfg, err := LoadArgs([]string{"--repository", "/flag/repo", "--width", "90"}, environ)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Repository != "/flag/repo" {
		t.Fatalf("repository = %q, want flag to win", cfg.App.Repository)
	}
	if cfg.App.Width != 90 {
		t.Fatalf("width = %d, want flag to win", cfg.App.Width)
	}
	if cfg.App.Revset != "trunk()" {
		t.Fatalf("revset = %q, want env fallback", cfg.App.Revset)
	}
	if cfg.App.ShowFooter {
		t.Fatal("env footer=false not honored")
	}
	if !cfg.Logging.Trace {
		t.Fatal("env trace=true not honored")
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatal("negative width accepted")
	}
	if _, err := LoadArgs([]string{"--height", "-5"}, nil); err == nil {
		t.Fatal("negative height accepted")
	}
}

func TestLoadArgsMalformedEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"JJCONSOLE_WIDTH=wide", "JJCONSOLE_VERBOSE=yep"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("width = %d, want fallback 0", cfg.App.Width)
	}
	if cfg.Features.Verbose {
		t.Fatal("unparseable bool must fall back to default")
	}
}

func TestValidateRepositoryPath(t *testing.T) {
	cfg, err := LoadArgs([]string{"--repository", t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	cfg.App.Repository = "/definitely/not/a/real/path"
	if err := Validate(cfg); err == nil || !strings.Contains(err.Error(), "repository path") {
		t.Fatalf("Validate = %v, want repository path error", err)
	}
}
