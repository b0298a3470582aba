package bundler

import "strings"

// DefaultMarker is the text that identifies a file declaring a subtype of a
// library type.
const DefaultMarker = " extends PR_"

// Kind is the classification of a source file.
type Kind int

const (
	// Independent files do not extend any library type.
	Independent Kind = iota
	// Dependent files extend some other library type.
	Dependent
)

func (k Kind) String() string {
	switch k {
	case Independent:
		return "independent"
	case Dependent:
		return "dependent"
	default:
		return "unknown"
	}
}

// Classifier decides whether a file depends on another file in the set.
type Classifier interface {
	Classify(content string) Kind
}

// ClassifierFunc adapts a plain function to a Classifier.
type ClassifierFunc func(content string) Kind

// Classify implements Classifier.
func (f ClassifierFunc) Classify(content string) Kind { return f(content) }

// MarkerClassifier is a textual heuristic: any occurrence of Marker, including
// inside comments or string literals, makes the file Dependent. It cannot tell
// which file is depended upon.
type MarkerClassifier struct {
	Marker string
}

// NewMarkerClassifier returns a MarkerClassifier, falling back to
// DefaultMarker when marker is empty.
func NewMarkerClassifier(marker string) MarkerClassifier {
	if marker == "" {
		marker = DefaultMarker
	}
	return MarkerClassifier{Marker: marker}
}

// Classify implements Classifier.
// A zero MarkerClassifier uses DefaultMarker.
func (m MarkerClassifier) Classify(content string) Kind {
	marker := m.Marker
	if marker == "" {
		marker = DefaultMarker
	}
	if strings.Contains(content, marker) {
		return Dependent
	}
	return Independent
}
