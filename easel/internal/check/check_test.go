//go:build !easeldebug

package check

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreconditionLogsViolations(t *testing.T) {
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(previous)

	assert.True(t, Precondition(true, "never logged"))
	assert.Empty(t, buf.String())

	assert.False(t, Precondition(false, "size mismatch", "width", 3))
	assert.Contains(t, buf.String(), "Precondition violated: size mismatch")
	assert.Contains(t, buf.String(), "width=3")
}
