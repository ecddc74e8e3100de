// Package geomerr draws the line between degenerate input (returned as
// empty-but-valid values so pipelines stay composable) and programmer
// errors (a BRep asked to become topologically inconsistent), which
// abort loudly. It mirrors the eshell CheckGeometry/AddPanel pattern:
// invariant violations are wrapped with tracerr so a crash carries a
// source trace instead of a bare panic message.
package geomerr

import (
	"fmt"

	"github.com/ztrue/tracerr"
)

// Invariant panics with a traced error. Call it only for conditions
// that indicate the caller is misusing the graph API, never for
// degenerate geometric input (zero-length segments, too-short
// profiles, etc., those are returned as empty results by the caller).
func Invariant(format string, args ...interface{}) {
	err := tracerr.Wrap(fmt.Errorf(format, args...))
	tracerr.PrintSourceColor(err, 5, 2)
	panic(err)
}

// CheckIndex panics via Invariant if idx is outside [0, length).
func CheckIndex(kind string, idx, length int) {
	if idx < 0 || idx >= length {
		Invariant("%s index %d out of range [0,%d)", kind, idx, length)
	}
}
