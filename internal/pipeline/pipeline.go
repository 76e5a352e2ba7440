package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"bloggen/internal/articlecache"
	"bloggen/internal/config"
	"bloggen/internal/logging"
	"bloggen/internal/outline"
	"bloggen/internal/posts"
)

// ErrContentTooShort reports a generated article below the configured minimum
// length. It is a data-quality guard, not a transient condition, so the run
// aborts instead of retrying or persisting the article.
var ErrContentTooShort = errors.New("generated content below minimum length")

// Generator produces article text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Summary reports the outcome of a run.
type Summary struct {
	Documents int
	Generated int
	Reused    int
	Skipped   int
	Inserted  int64
	CacheDir  string
}

// Runner executes the generation pipeline over a corpus.
type Runner struct {
	cfg       *config.Config
	store     *posts.Store
	cache     *articlecache.Cache
	generator Generator
	logger    *slog.Logger

	// pace is called after each successful generation; tests override it.
	pace func(time.Duration)
	now  func() time.Time
}

// Option customizes the runner.
type Option func(*Runner)

// WithPacer overrides how the post-generation pause is performed (useful for tests).
func WithPacer(pace func(time.Duration)) Option {
	return func(r *Runner) {
		if pace != nil {
			r.pace = pace
		}
	}
}

// WithClock overrides the time source used for row and cache timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// New constructs a Runner. All dependencies are required except the logger.
func New(cfg *config.Config, store *posts.Store, cache *articlecache.Cache, generator Generator, logger *slog.Logger, opts ...Option) (*Runner, error) {
	if cfg == nil || store == nil || cache == nil || generator == nil {
		return nil, errors.New("pipeline requires config, store, cache, and generator")
	}
	runner := &Runner{
		cfg:       cfg,
		store:     store,
		cache:     cache,
		generator: generator,
		logger:    logging.NewComponentLogger(logger, "pipeline"),
		pace:      time.Sleep,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(runner)
	}
	return runner, nil
}

// Run processes every markdown document in the corpus directory in name order.
// It returns the run summary together with any fatal error; work committed
// before a fatal error remains persisted.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	summary := Summary{CacheDir: r.cache.Dir()}

	docs, err := r.listDocuments()
	if err != nil {
		return summary, err
	}
	if len(docs) == 0 {
		r.logger.Info("no markdown documents found", logging.String("corpus", r.cfg.Paths.CorpusDir))
		return summary, nil
	}

	seen, err := r.store.ExistingKeys(ctx)
	if err != nil {
		return summary, err
	}

	r.logger.Info("starting generation run",
		logging.Int("documents", len(docs)),
		logging.Int("existing_posts", len(seen)),
		logging.String("db", r.store.Path()),
		logging.String("model", r.cfg.Ollama.Model))

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if err := r.processDocument(ctx, doc, seen, &summary); err != nil {
			return summary, err
		}
	}

	r.logger.Info("run complete",
		logging.Int64("inserted", summary.Inserted),
		logging.Int("skipped", summary.Skipped),
		logging.Int("generated", summary.Generated),
		logging.Int("cache_reused", summary.Reused),
		logging.String("cache_dir", summary.CacheDir))
	return summary, nil
}

func (r *Runner) listDocuments() ([]string, error) {
	entries, err := os.ReadDir(r.cfg.Paths.CorpusDir)
	if err != nil {
		return nil, fmt.Errorf("corpus directory %q: %w", r.cfg.Paths.CorpusDir, err)
	}

	var docs []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".md") {
			docs = append(docs, filepath.Join(r.cfg.Paths.CorpusDir, entry.Name()))
		}
	}
	sort.Strings(docs)
	return docs, nil
}

func (r *Runner) processDocument(ctx context.Context, path string, seen map[outline.Key]struct{}, summary *Summary) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read document %q: %w", path, err)
	}
	body := strings.TrimSpace(string(raw))

	fileName := filepath.Base(path)
	docID := strings.TrimSpace(strings.TrimSuffix(fileName, filepath.Ext(fileName)))
	if docID == "" {
		docID = fileName
	}

	docLogger := r.logger.With(logging.String("document", outline.DocumentTitle(path)))

	items := outline.Extract(body, docID)
	if len(items) == 0 {
		docLogger.Info("no article headings, skipping document")
		return nil
	}
	summary.Documents++
	docLogger.Info("extracted items", logging.Int("items", len(items)))

	var batch []posts.Row
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return err
		}

		key := item.Key()
		if _, exists := seen[key]; exists {
			summary.Skipped++
			docLogger.Info("already persisted, skipping",
				logging.String("title", item.Title),
				logging.String("category", item.Category))
			continue
		}

		content, err := r.resolveContent(ctx, fileName, body, item, docLogger, summary)
		if err != nil {
			return err
		}

		batch = append(batch, posts.Row{
			CreatedAt: r.now(),
			Title:     item.Title,
			Content:   content,
			Category:  item.Category,
		})
		seen[key] = struct{}{}
	}

	// One commit per document: either all of its new rows land or none do.
	added, err := r.store.InsertBatch(ctx, batch)
	if err != nil {
		return fmt.Errorf("persist document %q: %w", fileName, err)
	}
	summary.Inserted += added
	docLogger.Info("document committed", logging.Int64("rows_added", added))
	return nil
}

// resolveContent returns the article text for an item, preferring the cache
// and generating (then write-through caching) on a miss.
func (r *Runner) resolveContent(ctx context.Context, fileName, body string, item outline.Item, docLogger *slog.Logger, summary *Summary) (string, error) {
	fingerprint := articlecache.Fingerprint(fileName, item.Title, item.Category)
	if entry, ok := r.cache.Get(fingerprint); ok {
		summary.Reused++
		docLogger.Info("reusing cached article",
			logging.String("title", item.Title),
			logging.String("fingerprint", fingerprint))
		return entry.Content, nil
	}

	docLogger.Info("generating article",
		logging.String("title", item.Title),
		logging.String("category", item.Category))

	prompt := buildPrompt(body, item.Category, item.Title, r.cfg.Generation.PromptCharBudget)
	start := time.Now()
	content, err := r.generator.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate %q: %w", item.Title, err)
	}
	// Length is measured in code points, matching the prompt budget.
	if chars := utf8.RuneCountInString(content); chars < r.cfg.Generation.MinContentChars {
		return "", fmt.Errorf("%w: %q produced %d chars, need %d",
			ErrContentTooShort, item.Title, chars, r.cfg.Generation.MinContentChars)
	}
	docLogger.Info("article generated",
		logging.String("title", item.Title),
		logging.Duration("elapsed", time.Since(start)))

	entry := articlecache.Entry{
		SourceFile:  fileName,
		Category:    item.Category,
		Title:       item.Title,
		GeneratedAt: r.now().UTC(),
		Model:       r.cfg.Ollama.Model,
		Content:     content,
		Hierarchy: articlecache.Hierarchy{
			Section:    item.Section,
			Subsection: item.Subsection,
			RawHeading: item.RawHeading,
		},
	}
	if err := r.cache.Put(fingerprint, entry); err != nil {
		return "", fmt.Errorf("cache %q: %w", item.Title, err)
	}

	summary.Generated++
	if delay := time.Duration(r.cfg.Generation.RequestDelayMS) * time.Millisecond; delay > 0 {
		r.pace(delay)
	}
	return content, nil
}
