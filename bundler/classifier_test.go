package bundler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkerClassifier(t *testing.T) {
	c := NewMarkerClassifier("")

	tests := []struct {
		name    string
		content string
		want    Kind
	}{
		{"no marker", "const a=1;", Independent},
		{"class declaration", "class B extends PR_A {}", Dependent},
		{"marker at start", " extends PR_X", Dependent},
		{"marker in comment", "// class Y extends PR_Z\nconst y = 2;", Dependent},
		{"marker in string", `const s = "Foo extends PR_Bar";`, Dependent},
		{"other base class", "class B extends Base {}", Independent},
		{"missing leading space", "class B\textends PR_A {}", Independent},
		{"empty file", "", Independent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.content))
		})
	}
}

func TestMarkerClassifierZeroValue(t *testing.T) {
	var c MarkerClassifier
	assert.Equal(t, Independent, c.Classify("const a=1;"))
	assert.Equal(t, Dependent, c.Classify("class B extends PR_A {}"))
}

func TestMarkerClassifierCustomMarker(t *testing.T) {
	c := NewMarkerClassifier(" extends Base")
	assert.Equal(t, Dependent, c.Classify("class B extends Base {}"))
	assert.Equal(t, Independent, c.Classify("class B extends PR_A {}"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "independent", Independent.String())
	assert.Equal(t, "dependent", Dependent.String())
	assert.Equal(t, "unknown", Kind(7).String())
}
