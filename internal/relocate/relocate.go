// Package relocate moves cut-list files into their resolved destination
// folders.
package relocate

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"cutsort/internal/failure"
	"cutsort/internal/fileutil"
	"cutsort/internal/logging"
)

// ErrTargetExists is returned when the destination already holds a file of
// the same name.
var ErrTargetExists = errors.New("target already exists")

// Relocator moves files, creating destination folders as needed.
type Relocator struct {
	logger *slog.Logger
	// rename is swapped in tests to simulate cross-device moves.
	rename func(oldpath, newpath string) error
}

// New returns a Relocator logging through logger.
func New(logger *slog.Logger) *Relocator {
	return &Relocator{
		logger: logging.NewComponentLogger(logger, "relocate"),
		rename: os.Rename,
	}
}

// Move places file inside destDir under its own base name and returns the
// new path. destDir is created if missing. An existing target is never
// overwritten.
func (r *Relocator) Move(ctx context.Context, file, destDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", failure.Wrap(failure.ErrFilesystem, "relocate", "create destination", destDir, err)
	}

	target := filepath.Join(destDir, filepath.Base(file))
	if _, err := os.Lstat(target); err == nil {
		return "", failure.Wrap(failure.ErrFilesystem, "relocate", "move", target, ErrTargetExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", failure.Wrap(failure.ErrFilesystem, "relocate", "stat target", target, err)
	}

	crossDevice := false
	if err := r.rename(file, target); err != nil {
		if !errors.Is(err, unix.EXDEV) {
			return "", failure.Wrap(failure.ErrFilesystem, "relocate", "move", file, err)
		}
		crossDevice = true
		if err := fileutil.CopyFileVerified(file, target); err != nil {
			return "", failure.Wrap(failure.ErrFilesystem, "relocate", "copy across devices", file, err)
		}
		if err := os.Remove(file); err != nil {
			return "", failure.Wrap(failure.ErrFilesystem, "relocate", "remove source after copy", file, err)
		}
	}

	r.logger.InfoContext(ctx, "file moved",
		logging.String(logging.FieldFile, file),
		logging.String("target", target),
		logging.Bool("cross_device", crossDevice),
		logging.String(logging.FieldEventType, "file_moved"),
	)
	return target, nil
}
