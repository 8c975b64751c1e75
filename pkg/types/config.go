package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "journal-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// AIConfig holds shared settings for stages that call a text-completion API.
type AIConfig struct {
	// Model is the model identifier (e.g. "gemini-2.5-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// GenerationConfig holds settings for the content generation pipeline.
type GenerationConfig struct {
	HTTPConfig `yaml:",inline"`

	// Gemini is the primary text-completion backend.
	Gemini AIConfig `json:"gemini" yaml:"gemini"`

	// Groq is the secondary backend exposed on the ask passthrough.
	Groq AIConfig `json:"groq" yaml:"groq"`
}

// StoreConfig holds settings for the record store.
type StoreConfig struct {
	// DBDir is the directory holding the two JSON tables and the run ledger.
	DBDir string `json:"db_dir" yaml:"db_dir"`
}

// RenderConfig holds settings for the render and compile stage.
type RenderConfig struct {
	// OutputDir is the base directory for per-article artifacts
	// (LaTeX source, PDF, HTML preview), one subdirectory per ID.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// TranslatedDir is the base directory for translated artifacts,
	// one subdirectory per {lang}_translate_{id}.
	TranslatedDir string `json:"translated_dir" yaml:"translated_dir"`

	// LogsDir receives the compiler's log/aux/out byproducts after a
	// successful run, one subdirectory per ID.
	LogsDir string `json:"logs_dir" yaml:"logs_dir"`
}

// TranslateConfig holds settings for the translation pipeline.
type TranslateConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxChunkLen is the per-call character ceiling of the translation
	// provider (default 4900).
	MaxChunkLen int `json:"max_chunk_len" yaml:"max_chunk_len"`
}

// ServerConfig holds settings for the HTTP surface.
type ServerConfig struct {
	// Addr is the listen address (default ":8000").
	Addr string `json:"addr" yaml:"addr"`
}

// AppConfig groups all stage configurations.
type AppConfig struct {
	Store      StoreConfig      `json:"store" yaml:"store"`
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Render     RenderConfig     `json:"render" yaml:"render"`
	Translate  TranslateConfig  `json:"translate" yaml:"translate"`
	Server     ServerConfig     `json:"server" yaml:"server"`
}

// Defaults fills zero-valued fields with working defaults.
func (c *AppConfig) Defaults() {
	if c.Store.DBDir == "" {
		c.Store.DBDir = "db"
	}
	if c.Render.OutputDir == "" {
		c.Render.OutputDir = "output/articles"
	}
	if c.Render.TranslatedDir == "" {
		c.Render.TranslatedDir = "output/translated"
	}
	if c.Render.LogsDir == "" {
		c.Render.LogsDir = "output/logs"
	}
	if c.Generation.Timeout <= 0 {
		c.Generation.Timeout = 30 * time.Second
	}
	if c.Generation.UserAgent == "" {
		c.Generation.UserAgent = "journal-engine/0.1"
	}
	if c.Generation.Gemini.Model == "" {
		c.Generation.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Generation.Gemini.MaxRetries <= 0 {
		c.Generation.Gemini.MaxRetries = 3
	}
	if c.Generation.Groq.Model == "" {
		c.Generation.Groq.Model = "llama-3.3-70b-versatile"
	}
	if c.Generation.Groq.MaxRetries <= 0 {
		c.Generation.Groq.MaxRetries = 3
	}
	if c.Translate.Timeout <= 0 {
		c.Translate.Timeout = 15 * time.Second
	}
	if c.Translate.MaxChunkLen <= 0 {
		c.Translate.MaxChunkLen = 4900
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
}
