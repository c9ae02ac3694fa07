// SPDX-License-Identifier: EPL-2.0

package utils

import "fmt"

// FormatTimestamp renders a millisecond offset as HH:MM:SS.mmm for
// transcript and log lines. Negative offsets are treated as zero, and
// the hour field wraps at 24 so the width stays fixed on very long
// recordings.
func FormatTimestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}

	millis := ms % 1000
	seconds := (ms / 1000) % 60
	minutes := (ms / 60_000) % 60
	hours := (ms / 3_600_000) % 24

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
