package query

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"calendar date", "2025-12-02", true},
		{"timestamp", "2025-12-02T10:00:00Z", true},
		{"empty", "", false},
		{"whitespace", "   ", false},
		{"malformed", "02/12/2025", false},
		{"garbage", "soon", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ParseDate(tt.value)
			if ok != tt.ok {
				t.Errorf("ParseDate(%q) ok = %v, want %v", tt.value, ok, tt.ok)
			}
		})
	}
}

func TestIsUpcoming(t *testing.T) {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		want bool
	}{
		{"future date", "2025-12-02", true},
		{"past date", "2025-09-10", false},
		{"exactly now", "2025-10-01", false}, // midnight of the same day is before noon
		{"missing date", "", false},
		{"malformed date", "not-a-date", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUpcoming(tt.date, now); got != tt.want {
				t.Errorf("IsUpcoming(%q) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestIsUpcomingStrictBoundary(t *testing.T) {
	// A record dated exactly the comparison instant is not upcoming
	now := time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC)
	if IsUpcoming("2025-12-02", now) {
		t.Error("record dated exactly now should not be upcoming")
	}
	if !IsUpcoming("2025-12-02", now.Add(-time.Second)) {
		t.Error("record dated one second ahead should be upcoming")
	}
}

func TestIsFree(t *testing.T) {
	tests := []struct {
		fee  string
		want bool
	}{
		{"Free", true},
		{"free", true},
		{"FREE", true},
		{"  free  ", true},
		{"250", false},
		{"", false},
		{"freebie", false},
	}

	for _, tt := range tests {
		if got := IsFree(tt.fee); got != tt.want {
			t.Errorf("IsFree(%q) = %v, want %v", tt.fee, got, tt.want)
		}
	}
}

func TestMatchesSearch(t *testing.T) {
	fields := []string{"Intro to AI", "AI & Machine Learning workshop", "AI"}

	if !matchesSearch("", nil) {
		t.Error("empty term should match everything")
	}
	if !matchesSearch("ai", fields) {
		t.Error("search should be case-insensitive")
	}
	if !matchesSearch("machine learning", fields) {
		t.Error("search should match substrings inside a field")
	}
	if matchesSearch("blockchain", fields) {
		t.Error("term absent from every field should not match")
	}
}
