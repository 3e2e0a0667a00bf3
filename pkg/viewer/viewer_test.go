package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewerCommand(t *testing.T) {
	name, _ := viewerCommand("linux")
	assert.Equal(t, "xdg-open", name)

	name, args := viewerCommand("darwin")
	assert.Equal(t, "open", name)
	assert.Equal(t, []string{"-W"}, args)

	name, _ = viewerCommand("windows")
	assert.Equal(t, "rundll32", name)

	name, _ = viewerCommand("plan9")
	assert.Empty(t, name)
}
