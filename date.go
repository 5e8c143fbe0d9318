package larkreport

import (
	"time"

	"github.com/alnah/go-larkreport/internal/dateutil"
)

// ResolveDate handles "auto" and "auto:FORMAT" syntax for report dates.
//   - "auto" → t in the report format, e.g. "17 Oct 2026"
//   - "auto:FORMAT" → t in a custom format (e.g. "auto:DD/MM/YYYY")
//   - "auto:preset" → t using a named preset (iso, european, us, long, report)
//   - any other value → returned unchanged
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) (string, error) {
	return dateutil.ResolveDate(value, t)
}
