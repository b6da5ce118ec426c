// Command wordladderd serves word-ladder queries over HTTP. It loads the
// dictionary and candidate cache once at startup, shares them across all
// requests, and persists the cache on graceful shutdown.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/internal/server"
	"github.com/katalvlaran/wordladder/internal/storage"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// version is stamped at build time via -ldflags.
var version = "dev"

// shutdownTimeout bounds the drain of in-flight requests.
const shutdownTimeout = 5 * time.Second

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wordladderd [options]\n\n")
		fmt.Fprintf(os.Stderr, "wordladderd answers word-ladder queries over HTTP from a shared,\n")
		fmt.Fprintf(os.Stderr, "cache-backed dictionary graph.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEndpoints:\n")
		fmt.Fprintf(os.Stderr, "  GET /healthz\n")
		fmt.Fprintf(os.Stderr, "  GET /words/{word}/neighbors\n")
		fmt.Fprintf(os.Stderr, "  GET /ladder?from=<word>&to=<word>\n")
	}

	configFlag := pflag.StringP("config", "c", "", "Optional YAML config file")
	pflag.String("dict", "", "Dictionary file, one word per line (required)")
	pflag.String("cache", "possible_words.json", "Candidate cache file (JSON)")
	pflag.String("listen", ":8080", "HTTP listen address")
	pflag.String("log-level", "info", "Log level (trace..panic)")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}
	if *versionFlag {
		fmt.Printf("wordladderd version %s\n", version)
		return
	}

	cfg, err := config.Load(*configFlag, pflag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := newLogger(cfg.LogLevel)

	if cfg.Dict == "" {
		logger.Fatal().Msg("a dictionary file is required (--dict or WORDLADDER_DICT)")
	}
	if err := run(logger, cfg); err != nil {
		logger.Fatal().Err(err).Msg("wordladderd failed")
	}
}

// run serves until SIGINT/SIGTERM, then drains requests and persists the
// candidate cache so lists generated while serving survive the restart.
func run(log zerolog.Logger, cfg *config.Config) error {
	dict, err := storage.LoadDictionary(cfg.Dict)
	if err != nil {
		return err
	}
	cache, err := storage.LoadCache(cfg.Cache)
	if err != nil {
		return err
	}
	g, err := wordgraph.New(dict, wordgraph.WithCache(cache))
	if err != nil {
		return err
	}
	log.Info().Int("words", dict.Len()).Int("cached", cache.Len()).Msg("dictionary graph ready")

	srv := server.NewServer(cfg.Listen, g, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil {
		return err
	}

	if err := storage.SaveCache(cfg.Cache, g.Cache()); err != nil {
		return err
	}
	log.Info().Str("cache", cfg.Cache).Int("entries", g.Cache().Len()).Msg("candidate cache persisted")

	return nil
}

// newLogger builds a structured JSON logger on stderr at the configured
// level.
func newLogger(level string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
