//go:build easeldebug

package check

import (
	"fmt"
	"log/slog"
)

// Precondition panics on a contract violation in debug builds.
func Precondition(ok bool, msg string, args ...any) bool {
	if !ok {
		slog.Error("Precondition violated: "+msg, args...)
		panic(fmt.Sprintf("precondition violated: %s %v", msg, args))
	}
	return ok
}
