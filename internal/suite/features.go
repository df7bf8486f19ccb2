package suite

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// featureNames resolves a feature file URI to the name on its "Feature:" line.
type featureNames struct {
	mu    sync.Mutex
	names map[string]string
}

func newFeatureNames() *featureNames {
	return &featureNames{names: make(map[string]string)}
}

func (f *featureNames) Name(uri string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if name, ok := f.names[uri]; ok {
		return name
	}

	name := readFeatureName(uri)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(uri), filepath.Ext(uri))
	}

	f.names[uri] = name

	return name
}

func readFeatureName(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if rest, ok := strings.CutPrefix(line, "Feature:"); ok {
			return strings.TrimSpace(rest)
		}
	}

	return ""
}
