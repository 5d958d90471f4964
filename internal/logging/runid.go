// Package logging wires up the slog handlers used by the tester: a plain
// text handler for non-interactive runs and a colored interactive handler
// for terminal sessions. It also generates the per-run identifier attached
// to every log record.
package logging

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// GenerateRunID generates a new ULID for run identification. ULIDs sort by
// creation time, which keeps aggregated logs in session order.
func GenerateRunID() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
