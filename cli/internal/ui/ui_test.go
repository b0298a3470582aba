package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
)

func captureOut(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := Out
	prevNoColor := color.NoColor
	buf := &bytes.Buffer{}
	Out = buf
	color.NoColor = true
	t.Cleanup(func() {
		Out = prev
		color.NoColor = prevNoColor
	})
	return buf
}

func TestLineDiff(t *testing.T) {
	diffs := LineDiff("a\nb\nc\n", "a\nB\nc\n")

	var deleted, inserted []string
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			deleted = append(deleted, d.Text)
		case diffmatchpatch.DiffInsert:
			inserted = append(inserted, d.Text)
		}
	}
	assert.Equal(t, []string{"b\n"}, deleted)
	assert.Equal(t, []string{"B\n"}, inserted)
}

func TestPrintDiff(t *testing.T) {
	buf := captureOut(t)

	PrintDiff("keep\nold\n", "keep\nnew\n")

	assert.Equal(t, "  keep\n- old\n+ new\n", buf.String())
}

func TestPrintList(t *testing.T) {
	buf := captureOut(t)

	PrintList([]string{"one", "two"})

	assert.Equal(t, "  • one\n  • two\n", buf.String())
}
