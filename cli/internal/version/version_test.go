package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.Contains(t, info.String(), "jsbundle "+Version)
}

func TestFullStringMarksModified(t *testing.T) {
	info := Info{Version: "1.2.3", GitCommit: "abc123", Modified: true}
	assert.Contains(t, info.FullString(), "commit:   abc123 (modified)")
}
