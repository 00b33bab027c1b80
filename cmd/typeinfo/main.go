// Package main implements typeinfo, a command-line tool that resolves a
// message type identifier into its fully self-contained definition and
// compatibility signature, and can optionally subscribe to a topic to
// observe raw payload traffic for that type.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/ethz-asl/variant/msgtype"
	"github.com/ethz-asl/variant/pkgindex"
	"github.com/ethz-asl/variant/pubsub"
	"github.com/ethz-asl/variant/registry"
)

const (
	appName = "typeinfo"
	version = "0.1.0"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := run(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}
	if cfg.ShowHelp {
		return nil
	}

	logger := setupLogger(cfg.LogLevel, cfg.LogFormat)
	logger.Debug("starting", "version", version, "type", cfg.TypeName)

	indexOpts := []pkgindex.Option{pkgindex.WithLogger(logger)}
	if cfg.Manifest != "" {
		manifest, err := pkgindex.LoadManifest(cfg.Manifest)
		if err != nil {
			return err
		}
		indexOpts = append(indexOpts, pkgindex.WithManifest(manifest))
	}

	index, err := pkgindex.NewIndex(cfg.Roots, indexOpts...)
	if err != nil {
		return err
	}

	reg := registry.NewRegistry(registry.WithLogger(logger))
	resolver := msgtype.NewResolver(reg, index, index, msgtype.WithLogger(logger))

	mt, err := resolver.Resolve(cfg.TypeName)
	if err != nil {
		return err
	}
	if !mt.IsValid() {
		return fmt.Errorf("type [%s] resolved to an empty definition", cfg.TypeName)
	}

	if _, err := msgtype.RegisterDefinition(reg, mt); err != nil {
		logger.Warn("cannot compute signature, keeping wildcard", "error", err)
	} else if err := resolver.AttachSignature(&mt); err != nil {
		return err
	}

	fmt.Printf("type: %s\n", mt)
	fmt.Printf("signature: %s\n", mt.Signature())
	fmt.Printf("definition:\n%s", mt.Definition())

	if cfg.Topic == "" {
		return nil
	}
	return subscribeAndDump(logger, cfg, mt)
}

func subscribeAndDump(logger *slog.Logger, cfg cliConfig, mt msgtype.MessageType) error {
	client := pubsub.NewClient(cfg.NATSURL,
		pubsub.WithClientName(appName))
	if err := client.Connect(); err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	sub, err := client.Subscribe(mt, cfg.Topic, cfg.QueueDepth,
		func(t msgtype.MessageType, payload []byte) {
			logger.Info("message received",
				"topic", cfg.Topic, "type", t.DataType(), "bytes", len(payload))
		})
	if err != nil {
		return err
	}
	defer func() { _ = sub.Unsubscribe() }()

	logger.Info("subscribed, waiting for messages", "topic", cfg.Topic)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	return nil
}
