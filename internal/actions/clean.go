package actions

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/qa-labs/e2e-suite/internal/config"
	"github.com/sirupsen/logrus"
)

// Artifacts lists everything inside the reports, screenshots and downloads directories.
func Artifacts(cfg *config.Config) ([]string, error) {
	paths := make([]string, 0)

	for _, dir := range []string{cfg.ReportsDir, cfg.ScreenshotsDir, cfg.DownloadsDir} {
		if dir == "" {
			continue
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", dir, err)
		}

		for _, entry := range entries {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	return paths, nil
}

// Clean removes the artifacts of previous runs. Without force it only prints
// what would be removed.
func Clean(log logrus.FieldLogger, cfg *config.Config, force bool) ([]string, error) {
	log = log.WithField("component", "clean")

	paths, err := Artifacts(cfg)
	if err != nil {
		return nil, err
	}

	if len(paths) == 0 {
		fmt.Println("Nothing to clean.")
		return paths, nil
	}

	if !force {
		fmt.Println("The following artifacts would be removed:")
		for _, p := range paths {
			fmt.Printf("  %s\n", p)
		}
		return paths, nil
	}

	for _, p := range paths {
		if err := os.RemoveAll(p); err != nil {
			return nil, fmt.Errorf("removing %s: %w", p, err)
		}
		log.WithField("path", p).Debug("removed artifact")
	}

	fmt.Printf("\n✅ Removed %d artifacts\n", len(paths))

	return paths, nil
}
