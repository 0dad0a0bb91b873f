// Package gen orchestrates the introspect → render → (return|write|verify)
// pipeline that turns a live database schema into a Go definitions file.
package gen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/syssam/schemagen"
	"github.com/syssam/schemagen/dialect"
	"github.com/syssam/schemagen/dialect/sql/schema"
)

// Result is the outcome of a successful generation invocation.
type Result struct {
	// Source is the rendered Go definitions file.
	Source []byte
	// Path is the target file that was written or verified, if any.
	Path string
}

// Generate introspects the database behind drv and renders its type
// definitions. Depending on the options it returns the source, writes it
// to the target file, or verifies the target against the fresh output.
//
// In verify mode the target is never mutated, and exactly one of three
// outcomes occurs: nil error, a *schemagen.DriftError carrying a diff, or
// schemagen.ErrNoBaseline when the target does not exist yet.
func Generate(ctx context.Context, drv dialect.Driver, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)
	insp, err := schema.NewInspector(drv, schema.WithLogger(cfg.Logger))
	if err != nil {
		return nil, err
	}
	s, err := insp.Inspect(ctx)
	if err != nil {
		return nil, err
	}
	src, err := render(s, cfg)
	if err != nil {
		return nil, err
	}
	switch {
	case cfg.Target == "":
		if cfg.Verify {
			return nil, errors.New("gen: verify requires a target file")
		}
		return &Result{Source: src}, nil
	case cfg.Verify:
		if err := verifyTarget(cfg, src); err != nil {
			return nil, err
		}
		return &Result{Source: src, Path: cfg.Target}, nil
	default:
		if err := writeFile(cfg.Target, src); err != nil {
			return nil, fmt.Errorf("gen: write %s: %w", cfg.Target, err)
		}
		cfg.Logger.Info("wrote schema definitions", "path", cfg.Target, "bytes", len(src))
		return &Result{Source: src, Path: cfg.Target}, nil
	}
}

// verifyTarget compares the candidate source against the persisted file.
// Read existing, then compare; the candidate was already computed, so the
// three steps of the verify pipeline stay independently testable.
func verifyTarget(cfg Config, src []byte) error {
	existing, err := os.ReadFile(cfg.Target)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", schemagen.ErrNoBaseline, cfg.Target)
	}
	if err != nil {
		return fmt.Errorf("gen: read %s: %w", cfg.Target, err)
	}
	if bytes.Equal(existing, src) {
		cfg.Logger.Debug("schema definitions up to date", "path", cfg.Target)
		return nil
	}
	d := diffText(string(existing), string(src))
	cfg.Logger.Debug("schema drift detected", "path", cfg.Target, "diff", d)
	return &schemagen.DriftError{Path: cfg.Target, Diff: d}
}

// writeFile writes src through a temp file in the target directory and
// renames it into place, so a failed write never leaves a partial target.
func writeFile(path string, src []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}
