package testsupport

import (
	"testing"

	"bloggen/internal/config"
	"bloggen/internal/posts"
)

// MustOpenStore opens a posts store for the test config and closes it on cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *posts.Store {
	t.Helper()

	store, err := posts.Open(cfg)
	if err != nil {
		t.Fatalf("open posts store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close posts store: %v", err)
		}
	})
	return store
}
