package config

const (
	defaultCorpusDir        = "~/documents/blog"
	defaultDataDir          = "~/.local/share/bloggen"
	defaultCacheDir         = "~/.local/share/bloggen/cache/articles"
	defaultLogDir           = "~/.local/share/bloggen/logs"
	defaultOllamaBaseURL    = "http://127.0.0.1:11434"
	defaultOllamaModel      = "qwen2.5:7b-instruct-q4_0"
	defaultOllamaTimeout    = 240
	defaultOllamaRetries    = 3
	defaultRequestDelayMS   = 600
	defaultPromptCharBudget = 16000
	defaultMinContentChars  = 200
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CorpusDir: defaultCorpusDir,
			DataDir:   defaultDataDir,
			CacheDir:  defaultCacheDir,
			LogDir:    defaultLogDir,
		},
		Ollama: Ollama{
			BaseURL:        defaultOllamaBaseURL,
			Model:          defaultOllamaModel,
			TimeoutSeconds: defaultOllamaTimeout,
			Retries:        defaultOllamaRetries,
		},
		Generation: Generation{
			RequestDelayMS:   defaultRequestDelayMS,
			PromptCharBudget: defaultPromptCharBudget,
			MinContentChars:  defaultMinContentChars,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
