package bundler

import (
	"errors"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/satishbabariya/jsbundle/internal/debug"
)

// Placeholder names understood by the harness template.
const (
	LibraryKey    = "library"
	TestScriptKey = "test_script"
)

// ArtifactContext maps placeholder names to their replacement text.
type ArtifactContext map[string]string

func placeholder(name string) string { return "{" + name + "}" }

// Templater substitutes values into a document template.
type Templater struct {
	fs afero.Fs
}

// NewTemplater creates a templater that reads and writes through fs.
func NewTemplater(fs afero.Fs) *Templater {
	return &Templater{fs: fs}
}

// Render replaces every {name} placeholder for the names in ctx. Each name must
// occur in tmpl at least once. Substitution is a single pass, so replacement
// values are never rescanned, and text outside placeholders is unchanged.
func (t *Templater) Render(tmpl string, ctx ArtifactContext) (string, error) {
	names := make([]string, 0, len(ctx))
	for name := range ctx {
		names = append(names, name)
	}
	sort.Strings(names)

	var missing []string
	pairs := make([]string, 0, 2*len(names))
	for _, name := range names {
		if !strings.Contains(tmpl, placeholder(name)) {
			missing = append(missing, name)
			continue
		}
		pairs = append(pairs, placeholder(name), ctx[name])
	}
	if len(missing) > 0 {
		return "", &MalformedTemplateError{Missing: missing}
	}

	return strings.NewReplacer(pairs...).Replace(tmpl), nil
}

// RenderFile renders the template at templatePath with the library text and
// the auxiliary script at scriptPath, writing the document to outputPath.
// An existing document is overwritten.
func (t *Templater) RenderFile(templatePath, scriptPath, library, outputPath string) error {
	script, err := afero.ReadFile(t.fs, scriptPath)
	if err != nil {
		return &MissingInputError{Kind: "test script", Path: scriptPath, Err: err}
	}

	tmpl, err := afero.ReadFile(t.fs, templatePath)
	if err != nil {
		return &MissingInputError{Kind: "template", Path: templatePath, Err: err}
	}

	doc, err := t.Render(string(tmpl), ArtifactContext{
		LibraryKey:    library,
		TestScriptKey: string(script),
	})
	if err != nil {
		var malformed *MalformedTemplateError
		if errors.As(err, &malformed) {
			malformed.Path = templatePath
		}
		return err
	}

	if err := WriteFileAtomic(t.fs, outputPath, []byte(doc)); err != nil {
		return err
	}
	debug.Info("Template rendered", "template", templatePath, "path", outputPath)
	return nil
}
