package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/jsbundle/bundler"
	"github.com/satishbabariya/jsbundle/cli/internal/config"
	"github.com/satishbabariya/jsbundle/cli/internal/ui"
)

func setupProject(t *testing.T) afero.Fs {
	t.Helper()

	prevFs, prevOut := config.AppFs, ui.Out
	fs := afero.NewMemMapFs()
	config.AppFs = fs
	ui.Out = &bytes.Buffer{}
	t.Cleanup(func() {
		config.AppFs = prevFs
		ui.Out = prevOut
	})

	files := map[string]string{
		"/p/source/library/b.js":      "class B extends PR_A {}",
		"/p/source/ancillary/a.js":    "const a=1;",
		"/p/VERSION":                  "2.3.0\n",
		"/p/tools/test_script.js":     "runTests();",
		"/p/tools/test_template.html": "<script>{library}</script><script>{test_script}</script>",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
	}
	return fs
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return Execute()
}

var projectFlags = []string{"--source", "/p/source", "--version-file", "/p/VERSION"}

func TestCompileCommand(t *testing.T) {
	fs := setupProject(t)

	require.NoError(t, run(t, append([]string{"compile", "--output", "/p/dist/procuret.js"}, projectFlags...)...))

	data, err := afero.ReadFile(fs, "/p/dist/procuret.js")
	require.NoError(t, err)

	header, body := bundler.SplitHeader(string(data))
	assert.True(t, strings.HasPrefix(header, "/*Procuret JS Library 2.3.0 compiled "), header)
	assert.Equal(t, "const a=1;\nclass B extends PR_A {}\n", body)
}

func TestCompileMissingVersionWritesNothing(t *testing.T) {
	fs := setupProject(t)
	require.NoError(t, fs.Remove("/p/VERSION"))

	err := run(t, append([]string{"compile", "--output", "/p/dist/procuret.js"}, projectFlags...)...)

	var missing *bundler.MissingInputError
	require.ErrorAs(t, err, &missing)
	exists, _ := afero.Exists(fs, "/p/dist/procuret.js")
	assert.False(t, exists)
}

func TestCompileTestsCommand(t *testing.T) {
	fs := setupProject(t)

	require.NoError(t, run(t, append([]string{"compile-tests",
		"--output", "/p/tools/test.html",
		"--test-script", "/p/tools/test_script.js",
		"--template", "/p/tools/test_template.html"}, projectFlags...)...))

	data, err := afero.ReadFile(fs, "/p/tools/test.html")
	require.NoError(t, err)

	doc := string(data)
	assert.True(t, strings.HasPrefix(doc, "<script>/*Procuret JS Library 2.3.0 compiled "), doc)
	assert.Contains(t, doc, "const a=1;\nclass B extends PR_A {}\n</script><script>runTests();</script>")
}

func TestVerifyCommand(t *testing.T) {
	fs := setupProject(t)
	args := append([]string{"--output", "/p/procuret.js"}, projectFlags...)

	require.NoError(t, run(t, append([]string{"compile"}, args...)...))
	require.NoError(t, run(t, append([]string{"verify", "--quiet"}, args...)...))

	require.NoError(t, afero.WriteFile(fs, "/p/source/ancillary/a.js", []byte("const a=2;"), 0o644))
	err := run(t, append([]string{"verify", "--quiet"}, args...)...)
	assert.ErrorIs(t, err, ErrStale)
}

func TestInspectSummary(t *testing.T) {
	c := &bundler.Classification{
		Independents: []bundler.SourceFile{{Path: "a.js"}},
		Dependents:   []bundler.SourceFile{{Path: "b.js", Dependent: true}, {Path: "c.js", Dependent: true}},
	}

	summary := inspectSummary("../source", " extends PR_", c)
	assert.Contains(t, summary, "## ../source")
	assert.Contains(t, summary, "**1** independent files")
	assert.Contains(t, summary, "**2** dependent files (containing `extends PR_`)")
}

func TestInitCommand(t *testing.T) {
	fs := setupProject(t)

	require.NoError(t, run(t, "init", "--yes", "/p/.jsbundle.yaml"))
	exists, err := afero.Exists(fs, "/p/.jsbundle.yaml")
	require.NoError(t, err)
	assert.True(t, exists)

	assert.Error(t, run(t, "init", "--yes", "/p/.jsbundle.yaml"), "refuses to overwrite")
}

func TestCompileIntoSourceTreeIsStable(t *testing.T) {
	fs := setupProject(t)
	args := append([]string{"compile", "--output", "/p/source/procuret.js"}, projectFlags...)

	require.NoError(t, run(t, args...))
	first, err := afero.ReadFile(fs, "/p/source/procuret.js")
	require.NoError(t, err)

	require.NoError(t, run(t, args...))
	second, err := afero.ReadFile(fs, "/p/source/procuret.js")
	require.NoError(t, err)

	_, firstBody := bundler.SplitHeader(string(first))
	_, secondBody := bundler.SplitHeader(string(second))
	assert.Equal(t, "const a=1;\nclass B extends PR_A {}\n", secondBody)
	assert.Equal(t, firstBody, secondBody)
}
