package translate

import (
	"fmt"
	"io"
	"os"
)

// Sink receives one complete YAML document per translation.
type Sink interface {
	Name() string
	Write(doc []byte) error
}

// WriterSink writes every document to one io.Writer, typically stdout.
type WriterSink struct {
	name string
	w    io.Writer
}

func NewWriterSink(name string, w io.Writer) *WriterSink {
	return &WriterSink{name: name, w: w}
}

func (s *WriterSink) Name() string {
	return s.name
}

func (s *WriterSink) Write(doc []byte) error {
	_, err := s.w.Write(doc)
	return err
}

// FileSink replaces the file's content with each document, so watch mode
// always leaves the latest successful translation on disk.
type FileSink struct {
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Name() string {
	return s.path
}

func (s *FileSink) Write(doc []byte) error {
	if err := os.WriteFile(s.path, doc, 0o644); err != nil {
		return fmt.Errorf("cannot write file: %w", err)
	}
	return nil
}
