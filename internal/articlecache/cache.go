package articlecache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bloggen/internal/logging"
)

// fingerprintWidth is the number of hex characters kept from the content hash.
// 80 bits is plenty to avoid collisions within a single corpus.
const fingerprintWidth = 20

// Hierarchy records where in the source document an article originated.
type Hierarchy struct {
	Section    string `json:"section"`
	Subsection string `json:"subsection"`
	RawHeading string `json:"raw_heading"`
}

// Entry is the persisted payload for one generated article.
type Entry struct {
	SourceFile  string    `json:"source_file"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`
	Model       string    `json:"model"`
	Content     string    `json:"content"`
	Hierarchy   Hierarchy `json:"hierarchy"`
}

// Fingerprint derives the deterministic cache key for an article.
func Fingerprint(sourceFile, title, category string) string {
	sum := sha256.Sum256([]byte(sourceFile + "\n" + title + "\n" + category))
	return hex.EncodeToString(sum[:])[:fingerprintWidth]
}

// Cache stores entries under a single directory.
type Cache struct {
	dir    string
	logger *slog.Logger
}

// New creates a cache rooted at dir, creating the directory if needed.
func New(dir string, logger *slog.Logger) (*Cache, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("article cache directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory %q: %w", dir, err)
	}
	return &Cache{
		dir:    dir,
		logger: logging.NewComponentLogger(logger, "articlecache"),
	}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Get returns the entry for the fingerprint if a well-formed one exists.
// Any read failure counts as a miss.
func (c *Cache) Get(fingerprint string) (Entry, bool) {
	var entry Entry
	data, err := os.ReadFile(c.entryPath(fingerprint))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.logger.Debug("cache read failed, treating as miss",
				logging.String("fingerprint", fingerprint),
				logging.Error(err))
		}
		return Entry{}, false
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		c.logger.Debug("cache entry malformed, treating as miss",
			logging.String("fingerprint", fingerprint),
			logging.Error(err))
		return Entry{}, false
	}
	if strings.TrimSpace(entry.Content) == "" {
		return Entry{}, false
	}
	return entry, true
}

// Put writes an entry for the fingerprint. The write is atomic: the entry is
// staged in a temp file and renamed into place, so readers never observe a
// partially written payload.
func (c *Cache) Put(fingerprint string, entry Entry) error {
	if strings.TrimSpace(entry.Content) == "" {
		return errors.New("refusing to cache empty content")
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	target := c.entryPath(fingerprint)
	tmp, err := os.CreateTemp(c.dir, fingerprint+".*.tmp")
	if err != nil {
		return fmt.Errorf("stage cache entry: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("write cache entry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close cache entry: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("publish cache entry: %w", err)
	}

	c.logger.Debug("cached article",
		logging.String("fingerprint", fingerprint),
		logging.String("title", entry.Title))
	return nil
}

func (c *Cache) entryPath(fingerprint string) string {
	return filepath.Join(c.dir, fingerprint+".json")
}
