package client

import "testing"

func TestFormatLocalTime(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		timezone string
		want     string
	}{
		{
			name:     "UTC passthrough",
			value:    "2025-06-15T12:00:00Z",
			timezone: "UTC",
			want:     "Jun 15, 2025, 12:00pm",
		},
		{
			name:     "eastern time crosses midnight",
			value:    "2025-06-15T00:00:00Z",
			timezone: "America/New_York",
			want:     "Jun 14, 2025, 8:00pm",
		},
		{
			name:     "morning hour without leading zero",
			value:    "2020-01-02T08:05:00Z",
			timezone: "UTC",
			want:     "Jan 02, 2020, 8:05am",
		},
		{
			name:     "unknown timezone returns input unchanged",
			value:    "2025-06-15T12:00:00Z",
			timezone: "Mars/Olympus",
			want:     "2025-06-15T12:00:00Z",
		},
		{
			name:     "unparseable timestamp returns input unchanged",
			value:    "not-a-timestamp",
			timezone: "UTC",
			want:     "not-a-timestamp",
		},
		{
			name:     "both malformed returns input unchanged",
			value:    "garbage",
			timezone: "Nowhere/Void",
			want:     "garbage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatLocalTime(tt.value, tt.timezone)
			if got != tt.want {
				t.Errorf("FormatLocalTime(%q, %q) = %q, want %q", tt.value, tt.timezone, got, tt.want)
			}

			// Idempotent: identical input, identical output.
			if again := FormatLocalTime(tt.value, tt.timezone); again != got {
				t.Errorf("FormatLocalTime() not stable: %q then %q", got, again)
			}
		})
	}
}

func TestFormatGroupedInt(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{1000000000, "1,000,000,000"},
	}

	for _, tt := range tests {
		if got := FormatGroupedInt(tt.in); got != tt.want {
			t.Errorf("FormatGroupedInt(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
