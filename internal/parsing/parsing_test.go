package parsing

import (
	"testing"
	"time"
)

func TestDateAfter(t *testing.T) {
	now := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		days int
		want string
	}{
		{0, "20240305"},
		{7, "20240227"},
		{30, "20240204"},
		{365, "20230306"},
	}

	for _, tt := range tests {
		if got := DateAfter(now, tt.days); got != tt.want {
			t.Errorf("DateAfter(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00:00"},
		{1500 * time.Millisecond, "0:00:01"},
		{61 * time.Minute, "1:01:00"},
		{26*time.Hour + 3*time.Second, "26:00:03"},
		{-time.Second, "0:00:00"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.d); got != tt.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestHyphenateYyyyMmDd(t *testing.T) {
	if got := HyphenateYyyyMmDd("20240115"); got != "2024-01-15" {
		t.Fatalf("got %q", got)
	}
	if got := HyphenateYyyyMmDd("2024"); got != "2024" {
		t.Fatalf("short input should pass through, got %q", got)
	}
}

func TestPathSegment(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"TestChan", "TestChan"},
		{"  Spaced Name  ", "Spaced Name"},
		{"AC/DC", "AC_DC"},
		{`back\slash`, "back_slash"},
		{"../escape", "_escape"},
		{"..", ""},
		{"tab\tname", "tab_name"},
		{"Café", "Café"},
	}

	for _, tt := range tests {
		if got := PathSegment(tt.in); got != tt.want {
			t.Errorf("PathSegment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
