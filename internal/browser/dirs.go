package browser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// EnsureDirs creates every directory in dirs.
func EnsureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}

// CleanDir removes the regular files directly inside dir. A missing dir is fine.
// Files that cannot be removed are logged and counted in the returned error.
func CleanDir(log logrus.FieldLogger, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	var errs []error

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			log.WithError(err).WithField("path", path).Error("Error cleaning up file")
			errs = append(errs, err)
			continue
		}

		log.WithField("path", path).Info("Cleaned up file")
	}

	return errors.Join(errs...)
}
