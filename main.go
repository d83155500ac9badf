package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"fromblank/builder"
	"fromblank/config"
	"fromblank/store"
)

var cli struct {
	Serve serveCmd `cmd:"" default:"1" help:"Start the page server."`
	Seed  seedCmd  `cmd:"" help:"Import an existing document into the page store."`
}

type appContext struct {
	cfg config.Config
	log zerolog.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := newLogger(cfg.Log)

	ktx := kong.Parse(&cli,
		kong.Name("fromblank"),
		kong.Description("Serves web pages that are generated on first visit and rebuilt on request."),
	)
	if err := ktx.Run(&appContext{cfg: cfg, log: log}); err != nil {
		log.Error().Err(err).Str("command", ktx.Command()).Msg("command failed")
		os.Exit(1)
	}
}

func newLogger(cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	var out io.Writer = os.Stderr
	if strings.ToLower(cfg.Format) == "console" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func openStore(ctx context.Context, cfg config.StoreConfig) (store.Store, error) {
	switch cfg.Driver {
	case "redis":
		return store.OpenRedis(ctx, cfg.RedisURL)
	default:
		return store.OpenSQLite(cfg.DatabasePath)
	}
}

func buildLLM(cfg config.LLMConfig) (builder.LLMClient, error) {
	switch cfg.Provider {
	case "openai", "deepseek":
		return builder.NewOpenAILLM(builder.LLMSettings{
			Provider:  cfg.Provider,
			Model:     cfg.Model,
			APIKey:    cfg.APIKey,
			BaseURL:   cfg.BaseURL,
			MaxTokens: cfg.MaxTokens,
		})
	case "mock":
		return builder.MockLLM{Chunks: []string{
			"<!DOCTYPE html>\n<html><head><title>mock</title></head>",
			"<body><h1>Mock page</h1><p>Set LLM_PROVIDER=openai for real output.</p></body>",
			"</html>",
		}}, nil
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.Provider)
	}
}
