package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// cliConfig holds the parsed command-line configuration
type cliConfig struct {
	Roots      []string
	Manifest   string
	LogLevel   string
	LogFormat  string
	NATSURL    string
	Topic      string
	QueueDepth int
	ShowHelp   bool

	// Positional: the message type identifier to resolve
	TypeName string
}

func parseFlags(args []string) (cliConfig, error) {
	var cfg cliConfig
	var roots string

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.StringVar(&roots, "roots", os.Getenv("VARIANT_PACKAGE_PATH"),
		"colon-separated package search roots (default $VARIANT_PACKAGE_PATH)")
	fs.StringVar(&cfg.Manifest, "manifest", "", "YAML manifest pinning package locations")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "text", "log format (text, json)")
	fs.StringVar(&cfg.NATSURL, "nats-url", "", "NATS server URL enabling subscribe mode")
	fs.StringVar(&cfg.Topic, "topic", "", "topic to subscribe to (requires -nats-url)")
	fs.IntVar(&cfg.QueueDepth, "queue-depth", 16, "subscriber queue depth")
	fs.BoolVar(&cfg.ShowHelp, "help", false, "show usage")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] <package/TypeName>\n\n", appName)
		fmt.Fprintf(fs.Output(),
			"Resolves a message type identifier into its full definition and signature.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.ShowHelp {
		fs.Usage()
		return cfg, nil
	}

	if roots != "" {
		for _, root := range strings.Split(roots, ":") {
			if root != "" {
				cfg.Roots = append(cfg.Roots, root)
			}
		}
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return cfg, fmt.Errorf("expected exactly one message type identifier, got %d arguments", fs.NArg())
	}
	cfg.TypeName = fs.Arg(0)

	if cfg.Topic != "" && cfg.NATSURL == "" {
		return cfg, fmt.Errorf("-topic requires -nats-url")
	}

	return cfg, nil
}
