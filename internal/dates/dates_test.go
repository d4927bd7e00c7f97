package dates

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{
			name:  "ISO with seconds",
			input: "2025-09-27 22:17:26",
			want:  time.Date(2025, 9, 27, 22, 17, 26, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "ISO minute precision",
			input: "2025-09-27 22:17",
			want:  time.Date(2025, 9, 27, 22, 17, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "slash day first",
			input: "28/09/2025 22:17",
			want:  time.Date(2025, 9, 28, 22, 17, 0, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "dot separated with seconds",
			input: "28.09.2025 22:17:26",
			want:  time.Date(2025, 9, 28, 22, 17, 26, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "dash day first with seconds",
			input: "28-09-2025 22:17:26",
			want:  time.Date(2025, 9, 28, 22, 17, 26, 0, time.UTC),
			ok:    true,
		},
		{
			name:  "surrounding whitespace",
			input: "  2025-01-01 10:00  ",
			want:  time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
			ok:    true,
		},
		{name: "date only", input: "2025-09-27", ok: false},
		{name: "garbage", input: "not a date", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "impossible day", input: "45/09/2025 22:17", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
