package pkgindex

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/ethz-asl/variant/errors"
)

// Manifest pins package names to explicit locations, overriding scanned
// results on collision.
type Manifest struct {
	Packages map[string]string `yaml:"packages"`
}

// LoadManifest reads and parses a YAML manifest file
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, errors.WrapFatal(errors.ErrDefinitionUnreadable,
			"pkgindex", "LoadManifest", fmt.Sprintf("reading [%s]: %v", path, err))
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.WrapInvalid(errors.ErrDefinitionParseFailed,
			"pkgindex", "LoadManifest", fmt.Sprintf("parsing [%s]: %v", path, err))
	}
	return m, nil
}

// Index is a read-mostly catalog of package locations. Lookups are safe
// to interleave with re-scans.
type Index struct {
	mu       sync.RWMutex
	packages map[string]string

	roots    []string
	manifest Manifest
	logger   *slog.Logger

	watchMu sync.Mutex
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Option configures an Index
type Option func(*Index)

// WithLogger sets the structured logger used for scan events
func WithLogger(logger *slog.Logger) Option {
	return func(ix *Index) {
		ix.logger = logger
	}
}

// WithManifest pins the manifest's packages in addition to scanned roots
func WithManifest(m Manifest) Option {
	return func(ix *Index) {
		ix.manifest = m
	}
}

// NewIndex creates an index over the given search roots and performs an
// initial scan. Roots that do not exist are skipped with a warning;
// a root that exists but cannot be read fails the scan.
func NewIndex(roots []string, opts ...Option) (*Index, error) {
	ix := &Index{
		packages: make(map[string]string),
		roots:    roots,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(ix)
	}

	if err := ix.Rescan(); err != nil {
		return nil, err
	}
	return ix, nil
}

// Rescan rebuilds the package catalog from the search roots and the
// manifest.
func (ix *Index) Rescan() error {
	packages := make(map[string]string)

	for _, root := range ix.roots {
		entries, err := os.ReadDir(root)
		if err != nil {
			if os.IsNotExist(err) {
				ix.logger.Warn("skipping missing package root", "root", root)
				continue
			}
			return errors.WrapFatal(errors.ErrPackageNotFound,
				"Index", "Rescan", fmt.Sprintf("reading root [%s]: %v", root, err))
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			location := filepath.Join(root, entry.Name())
			info, err := os.Stat(filepath.Join(location, "msg"))
			if err != nil || !info.IsDir() {
				continue
			}
			packages[entry.Name()] = location
		}
	}

	// Manifest entries win over scanned ones.
	for name, location := range ix.manifest.Packages {
		packages[name] = location
	}

	ix.mu.Lock()
	ix.packages = packages
	ix.mu.Unlock()

	ix.logger.Debug("package index rebuilt",
		"roots", len(ix.roots), "packages", len(packages))
	return nil
}

// ResolvePackage returns the storage location of the named package
func (ix *Index) ResolvePackage(name string) (string, error) {
	ix.mu.RLock()
	location, ok := ix.packages[name]
	ix.mu.RUnlock()

	if !ok {
		return "", errors.WrapFatal(errors.ErrPackageNotFound,
			"Index", "ResolvePackage", fmt.Sprintf("package [%s]", name))
	}
	return location, nil
}

// LoadDefinition returns the raw text of the definition resource at the
// given path.
func (ix *Index) LoadDefinition(resource string) (string, error) {
	data, err := os.ReadFile(resource)
	if err != nil {
		return "", errors.WrapFatal(errors.ErrDefinitionUnreadable,
			"Index", "LoadDefinition", fmt.Sprintf("reading [%s]: %v", resource, err))
	}
	return string(data), nil
}

// Packages returns the known package names in sorted order
func (ix *Index) Packages() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()

	out := make([]string, 0, len(ix.packages))
	for name := range ix.packages {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Watch starts a filesystem watcher on the search roots that triggers a
// re-scan whenever their contents change. Stop it with Close.
func (ix *Index) Watch() error {
	ix.watchMu.Lock()
	defer ix.watchMu.Unlock()

	if ix.watcher != nil {
		return errors.WrapInvalid(errors.ErrInvalidOperation,
			"Index", "Watch", "starting a second watcher")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapFatal(err, "Index", "Watch", "creating watcher")
	}

	for _, root := range ix.roots {
		if err := watcher.Add(root); err != nil {
			ix.logger.Warn("cannot watch package root", "root", root, "error", err)
		}
	}

	done := make(chan struct{})
	ix.watcher = watcher
	ix.done = done

	go ix.watchLoop(watcher, done)
	return nil
}

// watchLoop takes the watcher and stop channel as arguments so it never
// touches the fields Close mutates.
func (ix *Index) watchLoop(watcher *fsnotify.Watcher, done chan struct{}) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			ix.logger.Debug("package root changed", "path", event.Name, "op", event.Op.String())
			if err := ix.Rescan(); err != nil {
				ix.logger.Error("package index re-scan failed", "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			ix.logger.Error("package watcher error", "error", err)
		case <-done:
			return
		}
	}
}

// Close stops the watcher if one is running
func (ix *Index) Close() error {
	ix.watchMu.Lock()
	defer ix.watchMu.Unlock()

	if ix.watcher == nil {
		return nil
	}
	close(ix.done)
	err := ix.watcher.Close()
	ix.watcher = nil
	ix.done = nil
	return err
}
