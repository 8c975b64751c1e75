// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"net/http"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/journal-engine/internal/llm"
	"github.com/pdiddy/journal-engine/internal/pipeline"
	"github.com/pdiddy/journal-engine/internal/store"
	"github.com/pdiddy/journal-engine/internal/texc"
	"github.com/pdiddy/journal-engine/internal/translate"
	"github.com/pdiddy/journal-engine/pkg/types"
)

// appConfig assembles the runtime configuration from viper keys, applying
// defaults and the API keys loaded from .secrets/.
func appConfig() types.AppConfig {
	var cfg types.AppConfig
	cfg.Store.DBDir = viper.GetString("store.db_dir")
	cfg.Render.OutputDir = viper.GetString("render.output_dir")
	cfg.Render.TranslatedDir = viper.GetString("render.translated_dir")
	cfg.Render.LogsDir = viper.GetString("render.logs_dir")
	cfg.Generation.Timeout = viper.GetDuration("generation.timeout")
	cfg.Generation.Gemini.Model = viper.GetString("generation.gemini.model")
	cfg.Generation.Gemini.APIKey = viper.GetString("generation.gemini.api_key")
	cfg.Generation.Gemini.MaxRetries = viper.GetInt("generation.gemini.max_retries")
	cfg.Generation.Groq.Model = viper.GetString("generation.groq.model")
	cfg.Generation.Groq.APIKey = viper.GetString("generation.groq.api_key")
	cfg.Generation.Groq.MaxRetries = viper.GetInt("generation.groq.max_retries")
	cfg.Translate.Timeout = viper.GetDuration("translate.timeout")
	cfg.Translate.MaxChunkLen = viper.GetInt("translate.max_chunk_len")
	cfg.Server.Addr = viper.GetString("server.addr")
	cfg.Defaults()

	cfg.Generation.Gemini.APIKey = secretDefault("gemini-api-key", cfg.Generation.Gemini.APIKey)
	cfg.Generation.Groq.APIKey = secretDefault("groq-api-key", cfg.Generation.Groq.APIKey)
	return cfg
}

// app bundles everything a subcommand needs.
type app struct {
	cfg    types.AppConfig
	store  *store.Store
	runner *pipeline.Runner
	ask    map[string]llm.Provider
	logger *zap.Logger
}

// newApp opens the store and wires the runner. The caller closes the app when
// done.
func newApp() (*app, error) {
	cfg := appConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	st, err := store.Open(cfg.Store)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: cfg.Generation.Timeout}
	gemini := llm.NewGemini(cfg.Generation.Gemini, client)
	groq := llm.NewGroq(cfg.Generation.Groq, client)

	runner := &pipeline.Runner{
		Store: st,
		Gen: &pipeline.Generator{
			Provider:   gemini,
			MaxRetries: cfg.Generation.Gemini.MaxRetries,
			Logger:     logger,
		},
		Compiler:   texc.NewCompiler(cfg.Render.LogsDir),
		Translator: translate.NewService(translate.NewGoogle(cfg.Translate), cfg.Translate, logger),
		Render:     cfg.Render,
		Logger:     logger,
	}

	return &app{
		cfg:    cfg,
		store:  st,
		runner: runner,
		ask:    map[string]llm.Provider{"gemini": gemini, "groq": groq},
		logger: logger,
	}, nil
}

func (a *app) close() {
	a.store.Close()
	a.logger.Sync()
}
