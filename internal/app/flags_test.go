package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-board", "parallel", "-w", "64", "-paused", "-god", "2"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Board != "parallel" || cfg.Width != 64 || !cfg.Paused || cfg.God != 2 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Height != 100 || cfg.Scale != 5 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestDiffConfigBind(t *testing.T) {
	cfg := NewDiffConfig()
	fs := flag.NewFlagSet("difftest", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-candidate", "parallel", "rounds=3", "w=10"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Candidate != "parallel" || cfg.Baseline != "naive" || cfg.Preset != "verification" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	overrides, err := ParseOverrides(fs.Args())
	if err != nil {
		t.Fatalf("ParseOverrides: %v", err)
	}
	if overrides["rounds"] != "3" || overrides["w"] != "10" || len(overrides) != 2 {
		t.Fatalf("unexpected overrides %v", overrides)
	}
}

func TestParseOverridesRejectsBareWords(t *testing.T) {
	for _, arg := range []string{"rounds", "=3"} {
		if _, err := ParseOverrides([]string{arg}); err == nil {
			t.Fatalf("ParseOverrides accepted %q", arg)
		}
	}
	if m, err := ParseOverrides([]string{"gods="}); err != nil || m["gods"] != "" {
		t.Fatalf("empty value should be allowed: %v %v", m, err)
	}
}
