package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbacks(t *testing.T) {
	t.Run("unset callbacks are ignored", func(t *testing.T) {
		var c Callbacks
		assert.NotPanics(t, func() {
			c.Quit()
			c.Debug("ignored")
		})
	})

	t.Run("set callbacks are invoked", func(t *testing.T) {
		quits := 0
		var messages []string
		c := Callbacks{
			OnQuit:         func() { quits++ },
			OnDebugMessage: func(m string) { messages = append(messages, m) },
		}

		c.Quit()
		c.Debug("frame")

		assert.Equal(t, 1, quits)
		assert.Equal(t, []string{"frame"}, messages)
	})
}

func TestSnapshotMessages(t *testing.T) {
	var messages []string
	c := Callbacks{OnDebugMessage: func(m string) { messages = append(messages, m) }}

	c.SnapshotSaved("")
	assert.Empty(t, messages, "failed saves are not reported")

	c.SnapshotSaved("/tmp/frame.png")
	require.Len(t, messages, 1)

	path, ok := SnapshotPath(messages[0])
	assert.True(t, ok)
	assert.Equal(t, "/tmp/frame.png", path)

	tests := []string{"frame", "snapshot:", ""}
	for _, m := range tests {
		t.Run(m, func(t *testing.T) {
			_, ok := SnapshotPath(m)
			assert.False(t, ok)
		})
	}
}
