package source

import (
	"fmt"
	"io"
)

// ReaderSource drains an io.Reader once, typically stdin.
type ReaderSource struct {
	name string
	r    io.Reader
}

func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{name: name, r: r}
}

func (s *ReaderSource) Name() string {
	return s.name
}

func (s *ReaderSource) Read() (string, error) {
	data, err := io.ReadAll(s.r)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", s.name, err)
	}
	return string(data), nil
}
