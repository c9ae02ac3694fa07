// SPDX-License-Identifier: EPL-2.0

package utils

import "testing"

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ms   int64
		want string
	}{
		{name: "zero", ms: 0, want: "00:00:00.000"},
		{name: "millis only", ms: 5, want: "00:00:00.005"},
		{name: "minute and seconds", ms: 61_005, want: "00:01:01.005"},
		{name: "one hour", ms: 3_600_000, want: "01:00:00.000"},
		{name: "mixed fields", ms: 2*3_600_000 + 34*60_000 + 56_789, want: "02:34:56.789"},
		{name: "last millisecond of day", ms: 86_400_000 - 1, want: "23:59:59.999"},
		{name: "wraps at 24 hours", ms: 86_400_000, want: "00:00:00.000"},
		{name: "day and a bit", ms: 86_400_000 + 61_005, want: "00:01:01.005"},
		{name: "negative clamps to zero", ms: -500, want: "00:00:00.000"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatTimestamp(tt.ms); got != tt.want {
				t.Errorf("FormatTimestamp(%d) = %q, want %q", tt.ms, got, tt.want)
			}
		})
	}
}

func BenchmarkFormatTimestamp(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		_ = FormatTimestamp(3_723_456)
	}
}
