package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	orig := Version
	Version = "v1.2.3"
	defer func() { Version = orig }()

	info := Get()
	assert.Equal(t, "v1.2.3", info.BuildTag)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+" "+runtime.GOARCH, info.Platform)
	assert.Equal(t, "v1.2.3", Short())

	s := info.String()
	assert.Contains(t, s, "Build Tag:    v1.2.3\n")
	assert.Contains(t, s, "Git Commit:   "+GitCommit+"\n")
}
