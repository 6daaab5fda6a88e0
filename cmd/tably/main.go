package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/thisisjab/tably/config"
	"github.com/thisisjab/tably/fault"
	"github.com/thisisjab/tably/translate"
	"gopkg.in/yaml.v3"
)

func main() {
	cfgPath := flag.String("config", "", "path to an optional config file")
	input := flag.String("in", "", "input file (default stdin)")
	output := flag.String("out", "", "output file (default stdout)")
	watch := flag.Bool("watch", false, "retranslate whenever the input file changes")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	flag.Parse()

	var cfg config.Config
	if *cfgPath != "" {
		fileContent, err := os.ReadFile(*cfgPath)
		if err != nil {
			fatal(fmt.Errorf("cannot read config file: %w", err))
		}
		if err := yaml.Unmarshal(fileContent, &cfg); err != nil {
			fatal(fmt.Errorf("cannot parse config file: %w", err))
		}
	}

	// Flags win over the config file.
	if *input != "" {
		cfg.Input = *input
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *watch {
		cfg.Watch = true
	}
	if *logLevel != "" {
		cfg.Logger.Level = *logLevel
	}

	translateCfg, logger, err := cfg.Parse()
	if err != nil {
		fatal(err)
	}

	translator, err := translate.New(*translateCfg, logger)
	if err != nil {
		fatal(err)
	}

	if !cfg.Watch {
		if err := translator.Run(); err != nil {
			fatal(err)
		}
		return
	}

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())

	// Setup signal handling to catch Ctrl+C (SIGINT) or Terminate (SIGTERM)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Run the watch loop in the foreground and wait for signals alongside it
	go func() {
		sig := <-sigChan
		logger.Info("received signal. shutting down.", "signal", sig)
		cancel()
	}()

	if err := translator.Watch(ctx); err != nil {
		logger.Error("watch error.", "error", err)
		cancel()
		os.Exit(1)
	}

	logger.Info("watch stopped.")
}

// fatal prints the error the way the parse pipeline classified it and exits
// non-zero. Fault codes make lex and grammar failures distinguishable in
// scripts that grep stderr.
func fatal(err error) {
	var f fault.Fault
	if errors.As(err, &f) {
		fmt.Fprintf(os.Stderr, "tably: %s: %s\n", f.Code(), f.Error())
	} else {
		fmt.Fprintf(os.Stderr, "tably: %v\n", err)
	}
	os.Exit(1)
}
