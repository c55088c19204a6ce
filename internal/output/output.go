// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output resolves where extracted documentation is written: a named
// file, standard output, or both.
package output

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/pdiddy/gendocs/pkg/types"
)

// StdoutName is the Destination name used when writing to standard output.
const StdoutName = "stdout"

// Destination is the writer extracted text goes to. It owns the output file,
// if any, and must be closed once the pass finishes.
type Destination struct {
	w      io.Writer
	file   *os.File
	name   string
	closed bool
}

// Open resolves cfg into a Destination. stdout receives the text when no
// path is configured, when tee is enabled, or when the named path cannot be
// opened and cfg.StrictOutput is false. In that last case a warning is
// logged and the returned error is nil.
func Open(cfg types.OutputConfig, stdout io.Writer, logger *zap.Logger) (*Destination, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Path == "" {
		return &Destination{w: stdout, name: StdoutName}, nil
	}

	f, err := os.OpenFile(cfg.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		if cfg.StrictOutput {
			return nil, fmt.Errorf("opening output %s: %w", cfg.Path, err)
		}
		logger.Warn("cannot open output file, writing to stdout instead",
			zap.String("path", cfg.Path), zap.Error(err))
		return &Destination{w: stdout, name: StdoutName}, nil
	}

	d := &Destination{w: f, file: f, name: cfg.Path}
	if cfg.Tee {
		d.w = io.MultiWriter(f, stdout)
	}
	logger.Debug("output opened", zap.String("path", cfg.Path), zap.Bool("tee", cfg.Tee))
	return d, nil
}

// Write implements io.Writer.
func (d *Destination) Write(p []byte) (int, error) {
	return d.w.Write(p)
}

// Name returns the output path, or StdoutName.
func (d *Destination) Name() string {
	return d.name
}

// IsFile reports whether the destination is backed by a named file.
func (d *Destination) IsFile() bool {
	return d.file != nil
}

// Close closes the output file. Closing a stdout destination, or closing
// twice, does nothing.
func (d *Destination) Close() error {
	if d.file == nil || d.closed {
		return nil
	}
	d.closed = true
	if err := d.file.Close(); err != nil {
		return fmt.Errorf("closing output %s: %w", d.name, err)
	}
	return nil
}
