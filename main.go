package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/AirHelp/statcalc/config"
	log "github.com/AirHelp/statcalc/logger"
	"github.com/AirHelp/statcalc/session"
)

func main() {
	cfg, err := parseStartingFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.Version {
		fmt.Println(versionString())
		os.Exit(0)
	}

	logger := log.InitLogger(cfg.Environment, cfg.LogLevel())
	defer func() { _ = logger.Sync() }()

	logger.Info("Statcalc starting", zap.String("version", strings.TrimSpace(version)))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	s := session.New(session.NewSessionInput{
		In:           os.Stdin,
		Out:          os.Stdout,
		GlobalConfig: cfg,
		Logger:       logger,
	})

	if err := s.Start(ctx); err != nil {
		logger.Error("Session failed", zap.Error(err))
		cancel()
		os.Exit(1)
	}

	logger.Debug("Session finished, shutting down")
}

// parseStartingFlags reads flags and optional config file, flags set explicitly win over the file.
func parseStartingFlags(args []string) (config.Config, error) {
	cfg := config.NewWithDefaults()

	fs := flag.NewFlagSet("statcalc", flag.ContinueOnError)
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Debug mode")
	fs.BoolVar(&cfg.Version, "version", false, "Prints version number")
	fs.BoolVarP(&cfg.Extended, "extended", "e", false, "Also print range, variance and standard deviation")
	fs.BoolVarP(&cfg.Summary, "summary", "s", false, "Also print JSON summary of every dataset")
	fs.StringVarP(&cfg.ConfigFile, "config", "c", "", "Path to YAML config file")
	fs.StringVar(&cfg.Environment, "environment", "", "Environment name attached to log entries")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.ConfigFile == "" {
		return cfg, nil
	}

	fileCfg, err := config.LoadFile(cfg.ConfigFile, cfg)
	if err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "verbose":
			fileCfg.Verbose = cfg.Verbose
		case "extended":
			fileCfg.Extended = cfg.Extended
		case "summary":
			fileCfg.Summary = cfg.Summary
		case "environment":
			fileCfg.Environment = cfg.Environment
		}
	})

	return fileCfg, nil
}
