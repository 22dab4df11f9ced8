package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultFifteenYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if cfg != DefaultFifteenConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultFifteenConfig())
	}
}

func TestParsePartialFillsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("shuffle:\n  policy: solvable\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Shuffle.Policy != PolicySolvable {
		t.Errorf("Shuffle.Policy = %q, expected %q", cfg.Shuffle.Policy, PolicySolvable)
	}
	if cfg.Display.WinMessage != DefaultWinMessage {
		t.Errorf("Display.WinMessage = %q, expected default", cfg.Display.WinMessage)
	}
	if cfg.Web.Address != ":8080" {
		t.Errorf("Web.Address = %q, expected :8080", cfg.Web.Address)
	}
	if cfg.SSH.IdleMinutes != 30 {
		t.Errorf("SSH.IdleMinutes = %d, expected 30", cfg.SSH.IdleMinutes)
	}
	if !cfg.Display.ShowHelp {
		t.Error("Display.ShowHelp = false, expected default true")
	}
}

func TestParseExplicitFalseKept(t *testing.T) {
	cfg, err := Parse([]byte("display:\n  show_help: false\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Display.ShowHelp {
		t.Error("Display.ShowHelp = true, expected false from file")
	}
	if cfg.Display.WinMessage != DefaultWinMessage {
		t.Errorf("Display.WinMessage = %q, expected default", cfg.Display.WinMessage)
	}
}

func TestParseUnknownPolicyFallsBack(t *testing.T) {
	cfg, err := Parse([]byte("shuffle:\n  policy: sorted\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Shuffle.Policy != PolicyUniform {
		t.Errorf("Shuffle.Policy = %q, expected %q", cfg.Shuffle.Policy, PolicyUniform)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("shuffle: [unclosed")); err == nil {
		t.Error("Parse should fail on malformed YAML")
	}
}

func TestLoadFifteenCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("display:\n  win_message: Solved!\n  show_help: false\nweb:\n  address: \"127.0.0.1:9000\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadFifteen(path)
	if err != nil {
		t.Fatalf("LoadFifteen() failed: %v", err)
	}

	if cfg.Display.WinMessage != "Solved!" {
		t.Errorf("WinMessage = %q, expected Solved!", cfg.Display.WinMessage)
	}
	if cfg.Web.Address != "127.0.0.1:9000" {
		t.Errorf("Web.Address = %q, expected 127.0.0.1:9000", cfg.Web.Address)
	}
	if cfg.Shuffle.Policy != PolicyUniform {
		t.Errorf("Shuffle.Policy = %q, expected default uniform", cfg.Shuffle.Policy)
	}
}

func TestLoadFifteenMissingCustomPath(t *testing.T) {
	_, err := LoadFifteen(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("LoadFifteen should fail when the custom path does not exist")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultFifteenConfig()
	cfg.Shuffle.Policy = PolicySolvable

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}
