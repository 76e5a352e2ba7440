package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"bloggen/internal/config"
)

// WriteDocument places a markdown document into the test corpus directory.
func WriteDocument(t testing.TB, cfg *config.Config, name, body string) string {
	t.Helper()

	if err := os.MkdirAll(cfg.Paths.CorpusDir, 0o755); err != nil {
		t.Fatalf("create corpus dir: %v", err)
	}
	path := filepath.Join(cfg.Paths.CorpusDir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write document %s: %v", name, err)
	}
	return path
}
