package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bloggen/internal/config"
)

func TestDefaultValidates(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Ollama.Retries != 3 {
		t.Fatalf("unexpected default retries: %d", cfg.Ollama.Retries)
	}
	if cfg.Generation.MinContentChars != 200 {
		t.Fatalf("unexpected default min content chars: %d", cfg.Generation.MinContentChars)
	}
}

func TestLoadAppliesFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[paths]
corpus_dir = "` + filepath.Join(dir, "docs") + `"
data_dir = "` + filepath.Join(dir, "data") + `"
cache_dir = "` + filepath.Join(dir, "cache") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[ollama]
model = "llama3.2:3b"
retries = 5
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be detected")
	}
	if resolved != path {
		t.Fatalf("unexpected resolved path: %s", resolved)
	}
	if cfg.Ollama.Model != "llama3.2:3b" {
		t.Fatalf("file override not applied: %s", cfg.Ollama.Model)
	}
	if cfg.Ollama.Retries != 5 {
		t.Fatalf("file override not applied: %d", cfg.Ollama.Retries)
	}
	if cfg.Ollama.BaseURL != "http://127.0.0.1:11434" {
		t.Fatalf("default base url lost: %s", cfg.Ollama.BaseURL)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		want     string
	}{
		{"zero retries", "[ollama]\nretries = 0\n", "retries"},
		{"bad format", "[logging]\nformat = \"yaml\"\n", "logging.format"},
		{"zero budget", "[generation]\nprompt_char_budget = 0\n", "prompt_char_budget"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.contents), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestEnvOverridesBaseURL(t *testing.T) {
	t.Setenv("OLLAMA_BASE_URL", "http://10.0.0.2:11434/")

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Ollama.BaseURL != "http://10.0.0.2:11434" {
		t.Fatalf("env override not applied: %s", cfg.Ollama.BaseURL)
	}
}
