package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/thisisjab/tably/dsl"
	"github.com/thisisjab/tably/source"
)

// Config wires one translator.
type Config struct {
	Source source.Source
	Sink   Sink
}

// Translator connects a configuration source to a YAML sink.
type Translator struct {
	source source.Source
	sink   Sink
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) (*Translator, error) {
	if cfg.Source == nil {
		return nil, errors.New("translator needs a source")
	}
	if cfg.Sink == nil {
		return nil, errors.New("translator needs a sink")
	}

	return &Translator{
		source: cfg.Source,
		sink:   cfg.Sink,
		logger: logger,
	}, nil
}

// Run reads the source once, translates it, and writes the YAML document to
// the sink.
func (t *Translator) Run() error {
	text, err := t.source.Read()
	if err != nil {
		return err
	}
	return t.translate(text)
}

// Watch translates once, then re-translates after every change to the
// source. A failed translation is logged and the watch continues: a file
// mid-edit is not a reason to stop. Returns nil when ctx is cancelled.
func (t *Translator) Watch(ctx context.Context) error {
	w, ok := t.source.(source.Watchable)
	if !ok {
		return fmt.Errorf("source %s is not watchable", t.source.Name())
	}

	if err := t.Run(); err != nil {
		t.logger.Error("translation failed.", "source", t.source.Name(), "error", err)
	} else {
		t.logger.Info("translated.", "source", t.source.Name(), "sink", t.sink.Name())
	}

	changes := make(chan string)
	watchErr := make(chan error, 1)

	go func() {
		watchErr <- w.Watch(ctx, changes)
	}()

	for {
		select {
		case err := <-watchErr:
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err

		case text := <-changes:
			if err := t.translate(text); err != nil {
				t.logger.Error("translation failed.", "source", t.source.Name(), "error", err)
				continue
			}
			t.logger.Info("translated.", "source", t.source.Name(), "sink", t.sink.Name())
		}
	}
}

func (t *Translator) translate(text string) error {
	doc, err := dsl.Translate(text)
	if err != nil {
		return err
	}

	if err := t.sink.Write(doc); err != nil {
		return fmt.Errorf("cannot write to %s: %w", t.sink.Name(), err)
	}

	return nil
}
