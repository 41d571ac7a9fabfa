// Command broker-replay routes recorded JSON messages through relay and topic
// channels declared in a TOML file and prints every delivery.
//
//	broker-replay -config broker.toml -input events.jsonl
//
// Each input line is {"channel": "<name>", "message": {...}}. Configuration
// may also come from the environment (or a .env file): BROKER_CONFIG names
// the routing file and BROKER_LOG_LEVEL sets the log level.
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/casualjim/broker/pkg/slogx"
	_ "github.com/joho/godotenv/autoload"
	"github.com/k0kubun/pp/v3"
	"github.com/phsym/zeroslog"
	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Stamp}
	log = zerolog.New(output).With().Timestamp().Logger()
}

func main() {
	configPath := flag.String("config", envOr("BROKER_CONFIG", "broker.toml"), "routing file")
	inputPath := flag.String("input", "-", "JSON lines to replay, - reads stdin")
	verbose := flag.Bool("v", false, "print the resolved routing config")
	flag.Parse()

	slog.SetDefault(slog.New(
		zeroslog.NewHandler(log, &zeroslog.HandlerOptions{Level: logLevel(os.Getenv("BROKER_LOG_LEVEL"))}),
	).With(slogx.LoggerName("broker-replay")))

	if err := run(*configPath, *inputPath, *verbose); err != nil {
		slog.Error("replay failed", slogx.Error(err))
		os.Exit(1)
	}
}

func run(configPath, inputPath string, verbose bool) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if verbose {
		pp.Fprintln(os.Stderr, cfg)
	}

	rp, err := NewReplayer(cfg, os.Stdout)
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if inputPath != "-" {
		f, err := os.Open(inputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, err := rp.Run(ctx, in)
	slog.Info("replay finished",
		slog.Int("lines", stats.Lines),
		slog.Int("dispatched", stats.Dispatched),
		slog.Int("skipped", stats.Skipped),
		slog.Int("delivered", stats.Delivered),
	)
	return err
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func logLevel(value string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(value))); err != nil {
		return slog.LevelInfo
	}
	return level
}
