// Command wordladder finds the shortest one-letter-change ladder between
// two dictionary words and writes it to a result file, one word per line.
// Substitution candidates are cached in a JSON document that is reused
// and extended on every run.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/wordladder/internal/config"
	"github.com/katalvlaran/wordladder/internal/storage"
	"github.com/katalvlaran/wordladder/ladder"
	"github.com/katalvlaran/wordladder/wordgraph"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wordladder [options] <dictionary> <start> <end> <result>\n\n")
		fmt.Fprintf(os.Stderr, "wordladder finds the shortest sequence of dictionary words from <start>\n")
		fmt.Fprintf(os.Stderr, "to <end> where each step changes exactly one letter, and writes it to\n")
		fmt.Fprintf(os.Stderr, "<result>, one word per line.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wordladder words.txt fore tree result.txt\n")
		fmt.Fprintf(os.Stderr, "  wordladder --cache /var/cache/cands.json words.txt four foul out.txt\n")
	}

	configFlag := pflag.StringP("config", "c", "", "Optional YAML config file")
	pflag.String("cache", "possible_words.json", "Candidate cache file (JSON)")
	pflag.String("log-level", "info", "Log level (trace..panic)")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}
	if *versionFlag {
		fmt.Printf("wordladder version %s\n", version)
		return
	}

	cfg, err := config.Load(*configFlag, pflag.CommandLine)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := newLogger(cfg.LogLevel)

	args := pflag.Args()
	if len(args) != 4 {
		pflag.Usage()
		os.Exit(2)
	}
	dictFile := args[0]
	start := strings.ToLower(args[1])
	end := strings.ToLower(args[2])
	resultFile := args[3]

	if err := run(logger, cfg.Cache, dictFile, start, end, resultFile); err != nil {
		logger.Fatal().Err(err).Msg("wordladder failed")
	}
}

// run executes one search end to end. The candidate cache is persisted
// whatever the outcome, so generation work survives skipped and failed
// searches alike.
func run(log zerolog.Logger, cachePath, dictPath, start, end, resultPath string) error {
	dict, err := storage.LoadDictionary(dictPath)
	if err != nil {
		return err
	}
	cache, err := storage.LoadCache(cachePath)
	if err != nil {
		return err
	}
	g, err := wordgraph.New(dict, wordgraph.WithCache(cache))
	if err != nil {
		return err
	}
	log.Debug().Int("words", dict.Len()).Int("cached", cache.Len()).Msg("inputs loaded")

	searchErr := search(log, g, start, end, resultPath)
	if err := storage.SaveCache(cachePath, g.Cache()); err != nil {
		return err
	}

	return searchErr
}

// search validates membership, runs the BFS and writes the result file.
// A word outside the dictionary or a missing ladder is a reported
// outcome, not an error; neither creates the result file.
func search(log zerolog.Logger, g *wordgraph.Graph, start, end, resultPath string) error {
	for _, word := range []string{start, end} {
		if !g.Dictionary().Contains(word) {
			log.Info().Str("word", word).Msg("word is not contained in the source file")
			return nil
		}
	}

	res, err := ladder.Shortest(g, start, end)
	if err != nil {
		return err
	}
	if !res.Found {
		log.Info().
			Str("from", start).
			Str("to", end).
			Int("visited", res.Visited).
			Msg("no path found, output file not created")
		return nil
	}

	if err := storage.SavePath(resultPath, res.Path); err != nil {
		return err
	}
	log.Info().
		Str("from", start).
		Str("to", end).
		Int("length", len(res.Path)).
		Int("visited", res.Visited).
		Str("result", resultPath).
		Msg("shortest ladder written")

	return nil
}

// newLogger builds a console logger on stderr at the configured level.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
