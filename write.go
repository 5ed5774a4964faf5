package staticgraph

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hupe1980/staticgraph/fs"
)

// WriteFiles stores g as <prefix>.offsets and <prefix>.targets in the layout
// Open maps. Both files are first written and synced under temporary names.
// Only then is an existing offsets file removed and the new pair renamed into
// place, targets before offsets. A failure at any step leaves either the
// previous graph or no openable graph, never a mix of old and new files.
//
// Graphs that fail ValidateOffsets are rejected before anything is written.
func WriteFiles[T Fixed](ctx context.Context, prefix string, g *Vector[T], optFns ...Option) (err error) {
	o := applyOptions(optFns)
	logger := o.logger.WithPrefix(prefix)
	start := time.Now()

	var written int64
	defer func() {
		o.metricsCollector.RecordWrite(written, time.Since(start), err)
		logger.LogWrite(ctx, written, err)
	}()

	if !isLittleEndian() {
		return ErrBigEndian
	}
	if err := validateOffsets(g.offsets, len(g.targets)); err != nil {
		return err
	}

	if dir := filepath.Dir(prefix); dir != "." {
		if err := o.fileSystem.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("staticgraph: create %s: %w", dir, err)
		}
	}

	fsys := o.fileSystem
	offsetsPath, targetsPath := Paths(prefix)
	offsetsTmp, targetsTmp := offsetsPath+".tmp", targetsPath+".tmp"

	nt, err := stage(fsys, targetsTmp, asBytes(g.targets))
	if err != nil {
		return err
	}
	no, err := stage(fsys, offsetsTmp, asBytes(g.offsets))
	if err != nil {
		return errors.Join(err, ignoreNotExist(fsys.Remove(targetsTmp)))
	}

	// Without offsets the old targets are unreachable, so removing them
	// first makes the two renames safe to interrupt.
	if err := commit(fsys, offsetsPath, targetsPath, offsetsTmp, targetsTmp); err != nil {
		return errors.Join(err,
			ignoreNotExist(fsys.Remove(targetsTmp)),
			ignoreNotExist(fsys.Remove(offsetsTmp)),
		)
	}

	written = nt + no
	return nil
}

// stage writes data to path and syncs it. On failure path is removed.
func stage(fsys fs.FileSystem, path string, data []byte) (int64, error) {
	f, err := fsys.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("staticgraph: create %s: %w", path, err)
	}

	n, err := f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return 0, errors.Join(fmt.Errorf("staticgraph: write %s: %w", path, err), ignoreNotExist(fsys.Remove(path)))
	}

	return int64(n), nil
}

func commit(fsys fs.FileSystem, offsetsPath, targetsPath, offsetsTmp, targetsTmp string) error {
	if err := ignoreNotExist(fsys.Remove(offsetsPath)); err != nil {
		return fmt.Errorf("staticgraph: remove %s: %w", offsetsPath, err)
	}
	if err := fsys.Rename(targetsTmp, targetsPath); err != nil {
		return fmt.Errorf("staticgraph: publish %s: %w", targetsPath, err)
	}
	if err := fsys.Rename(offsetsTmp, offsetsPath); err != nil {
		return fmt.Errorf("staticgraph: publish %s: %w", offsetsPath, err)
	}
	return nil
}

func ignoreNotExist(err error) error {
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
