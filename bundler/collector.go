// Package bundler concatenates a tree of JavaScript sources into a single
// library file and renders derived artifacts such as the test harness.
//
// Ordering is a two-bucket approximation: files that do not extend a library
// type are emitted first, files that do are emitted after, each bucket in
// discovery order. It is not a topological sort and does not detect chains
// of dependent files.
package bundler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/satishbabariya/jsbundle/internal/debug"
)

// DefaultPattern matches every script below the source root.
const DefaultPattern = "**/*.js"

// SourceFile is a discovered script and its classification.
type SourceFile struct {
	Path      string
	Content   string
	Dependent bool
}

// Classification partitions discovered files. Both slices keep discovery order
// and every file appears in exactly one of them.
type Classification struct {
	Independents []SourceFile
	Dependents   []SourceFile
}

// Len returns the number of classified files.
func (c *Classification) Len() int {
	return len(c.Independents) + len(c.Dependents)
}

// Ordered returns independents followed by dependents.
func (c *Classification) Ordered() []SourceFile {
	out := make([]SourceFile, 0, c.Len())
	out = append(out, c.Independents...)
	return append(out, c.Dependents...)
}

// Collector discovers and classifies source files.
type Collector struct {
	fs         afero.Fs
	classifier Classifier
	excludes   map[string]bool
}

// CollectorOption configures a Collector.
type CollectorOption func(*Collector)

// WithExcludes keeps the given files out of discovery, typically the bundle
// and harness outputs when they live inside the source tree.
func WithExcludes(paths ...string) CollectorOption {
	return func(c *Collector) {
		for _, p := range paths {
			if p != "" {
				c.excludes[absPath(p)] = true
			}
		}
	}
}

// NewCollector creates a collector reading from fs. A nil classifier uses the
// default marker heuristic.
func NewCollector(fs afero.Fs, classifier Classifier, opts ...CollectorOption) *Collector {
	if classifier == nil {
		classifier = NewMarkerClassifier(DefaultMarker)
	}
	c := &Collector{fs: fs, classifier: classifier, excludes: map[string]bool{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

// Discover returns the files below root whose root-relative path matches
// pattern, in lexical walk order. Dot-files and dot-directories below root are
// skipped. A missing or empty root yields no files.
func (c *Collector) Discover(root, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid source pattern %q", pattern)
	}

	exists, err := afero.DirExists(c.fs, root)
	if err != nil {
		return nil, &MissingInputError{Kind: "source directory", Path: root, Err: err}
	}
	if !exists {
		debug.Debug("Source root does not exist", "root", root)
		return nil, nil
	}

	var files []string
	err = afero.Walk(c.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return &MissingInputError{Kind: "source directory", Path: path, Err: err}
		}
		if info.IsDir() {
			if path != root && hidden(info.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden(info.Name()) || c.excludes[absPath(path)] {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to relativize %s: %w", path, err)
		}

		ok, err := doublestar.Match(pattern, filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("invalid source pattern %q: %w", pattern, err)
		}
		if ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	debug.Debug("Discovered sources", "root", root, "pattern", pattern, "count", len(files))
	return files, nil
}

// Collect discovers and classifies the files below root. Any file that cannot
// be read fails the whole collection.
func (c *Collector) Collect(root, pattern string) (*Classification, error) {
	paths, err := c.Discover(root, pattern)
	if err != nil {
		return nil, err
	}

	result := &Classification{}
	for _, path := range paths {
		content, err := afero.ReadFile(c.fs, path)
		if err != nil {
			return nil, &MissingInputError{Kind: "source file", Path: path, Err: err}
		}

		file := SourceFile{
			Path:      path,
			Content:   string(content),
			Dependent: c.classifier.Classify(string(content)) == Dependent,
		}
		if file.Dependent {
			result.Dependents = append(result.Dependents, file)
		} else {
			result.Independents = append(result.Independents, file)
		}
	}

	debug.Debug("Classified sources",
		"independent", len(result.Independents),
		"dependent", len(result.Dependents))
	return result, nil
}
