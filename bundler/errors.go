package bundler

import (
	"fmt"
	"strings"
)

// MissingInputError reports an input (version file, source file, auxiliary
// script or template) that could not be read.
type MissingInputError struct {
	// Kind names the input, e.g. "source file" or "version file"
	Kind string
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("cannot read %s %s: %v", e.Kind, e.Path, e.Err)
}

func (e *MissingInputError) Unwrap() error { return e.Err }

// MalformedTemplateError reports a template lacking required placeholders.
type MalformedTemplateError struct {
	Path    string
	Missing []string
}

func (e *MalformedTemplateError) Error() string {
	names := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		names[i] = placeholder(m)
	}

	if e.Path == "" {
		return fmt.Sprintf("template is missing placeholders %s", strings.Join(names, ", "))
	}
	return fmt.Sprintf("template %s is missing placeholders %s", e.Path, strings.Join(names, ", "))
}

// WriteError reports an output artifact that could not be created or written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
