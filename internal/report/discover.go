package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"
)

// DefaultPattern matches results.json at the top of the reports directory or at any depth below it.
const DefaultPattern = "{results.json,**/results.json}"

// Discoverer finds result files under a reports directory.
type Discoverer interface {
	Discover(dir string) ([]string, error)
}

type discoverer struct {
	log     logrus.FieldLogger
	pattern string
	matcher glob.Glob
}

// NewDiscoverer compiles pattern, which is matched against slash-separated paths relative to the searched directory.
func NewDiscoverer(log logrus.FieldLogger, pattern string) (Discoverer, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	matcher, err := glob.Compile(pattern, '/')
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}

	return &discoverer{
		log:     log.WithField("component", "discoverer"),
		pattern: pattern,
		matcher: matcher,
	}, nil
}

// Discover walks dir in lexical order, skipping hidden files and directories. A missing directory yields no paths.
// Unreadable subdirectories are logged and skipped.
func (d *discoverer) Discover(dir string) ([]string, error) {
	log := d.log.WithFields(logrus.Fields{"dir": dir, "pattern": d.pattern})

	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn("reports directory does not exist, nothing to combine")
			return []string{}, nil
		}
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}

	paths := make([]string, 0)

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			log.WithError(err).WithField("path", path).Warn("failed to read path, skipping")
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		// Hidden entries are skipped like a shell glob would.
		if path != dir && strings.HasPrefix(entry.Name(), ".") {
			if entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		if d.matcher.Match(filepath.ToSlash(rel)) {
			paths = append(paths, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}

	log.WithField("files", len(paths)).Debug("discovered result files")

	return paths, nil
}

// Compile-time interface compliance check
var _ Discoverer = (*discoverer)(nil)
