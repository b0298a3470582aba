package bundler

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/satishbabariya/jsbundle/internal/debug"
)

const (
	// DefaultProduct is the name written into the bundle header.
	DefaultProduct = "Procuret JS Library"
	// TimestampLayout formats the compile time in the header.
	TimestampLayout = "2006-01-02 15:04:05.000000"
)

// Bundle is the concatenated library. It is immutable once composed.
type Bundle struct {
	product    string
	version    string
	compiledAt time.Time
	paths      []string
	text       string
}

// Product returns the product name from the header.
func (b *Bundle) Product() string { return b.product }

// Version returns the version string embedded in the header.
func (b *Bundle) Version() string { return b.version }

// CompiledAt returns the timestamp embedded in the header.
func (b *Bundle) CompiledAt() time.Time { return b.compiledAt }

// Paths returns the source paths in emission order.
func (b *Bundle) Paths() []string {
	out := make([]string, len(b.paths))
	copy(out, b.paths)
	return out
}

// Header returns the header comment line.
func (b *Bundle) Header() string {
	return fmt.Sprintf("/*%s %s compiled %s*/", b.product, b.version, b.compiledAt.Format(TimestampLayout))
}

// Body returns the concatenated sources without the header.
func (b *Bundle) Body() string {
	_, body := SplitHeader(b.text)
	return body
}

// String returns the complete bundle text.
func (b *Bundle) String() string { return b.text }

// SplitHeader splits bundle text into its header line and the body that
// follows the blank separator line.
func SplitHeader(text string) (header, body string) {
	header, rest, found := strings.Cut(text, "\n")
	if !found {
		return header, ""
	}
	return header, strings.TrimPrefix(rest, "\n")
}

// Option configures a Bundler.
type Option func(*Bundler)

// WithProduct sets the product name written into the header.
func WithProduct(product string) Option {
	return func(b *Bundler) {
		if product != "" {
			b.product = product
		}
	}
}

// WithClock overrides the wall clock used for the header timestamp.
func WithClock(now func() time.Time) Option {
	return func(b *Bundler) {
		if now != nil {
			b.now = now
		}
	}
}

// Bundler orders classified files and concatenates them.
type Bundler struct {
	fs      afero.Fs
	product string
	now     func() time.Time
}

// NewBundler creates a bundler that reads and writes through fs.
func NewBundler(fs afero.Fs, opts ...Option) *Bundler {
	b := &Bundler{
		fs:      fs,
		product: DefaultProduct,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Compose builds the bundle text in memory: the header, a blank line, then
// every independent followed by every dependent, each terminated by a newline.
// The clock is read once.
func (b *Bundler) Compose(c *Classification, version string) *Bundle {
	bundle := &Bundle{
		product:    b.product,
		version:    sanitizeVersion(version),
		compiledAt: b.now().UTC(),
	}

	var sb strings.Builder
	sb.WriteString(bundle.Header())
	sb.WriteString("\n\n")

	for _, file := range c.Ordered() {
		bundle.paths = append(bundle.paths, file.Path)
		sb.WriteString(file.Content)
		sb.WriteString("\n")
	}

	bundle.text = sb.String()
	return bundle
}

// Build reads the version file, collects sources below root and composes the
// bundle. Nothing is written.
func (b *Bundler) Build(col *Collector, root, pattern, versionPath string) (*Bundle, error) {
	version, err := ReadVersion(b.fs, versionPath)
	if err != nil {
		return nil, err
	}

	classification, err := col.Collect(root, pattern)
	if err != nil {
		return nil, err
	}

	bundle := b.Compose(classification, version)
	debug.Debug("Composed bundle", "version", bundle.Version(), "files", len(bundle.paths), "bytes", len(bundle.text))
	return bundle, nil
}

// Save writes the bundle to outputPath atomically.
func (b *Bundler) Save(bundle *Bundle, outputPath string) error {
	if err := WriteFileAtomic(b.fs, outputPath, []byte(bundle.String())); err != nil {
		return err
	}
	debug.Info("Bundle written", "path", outputPath)
	return nil
}

func sanitizeVersion(version string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(version)
}
