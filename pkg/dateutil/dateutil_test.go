package dateutil

import (
	"testing"
	"time"
)

func TestDateOf(t *testing.T) {
	input := time.Date(2025, 1, 15, 14, 30, 45, 123456789, time.FixedZone("MSK", 3*60*60))
	expected := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	result := DateOf(input)

	if !result.Equal(expected) {
		t.Errorf("DateOf(%v) = %v, want %v", input, result, expected)
	}
}

func TestISOWeekday(t *testing.T) {
	tests := []struct {
		name  string
		input time.Time
		want  int
	}{
		{"Monday is 0", Date(2025, 1, 13), 0},
		{"Wednesday is 2", Date(2025, 1, 15), 2},
		{"Saturday is 5", Date(2025, 1, 18), 5},
		{"Sunday is 6", Date(2025, 1, 19), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ISOWeekday(tt.input)

			if result != tt.want {
				t.Errorf("ISOWeekday(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"), result, tt.want)
			}
		})
	}
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "Wednesday returns Monday",
			input:    time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC), // Wednesday
			expected: Date(2025, 1, 13),                            // Monday
		},
		{
			name:     "Monday returns same Monday",
			input:    time.Date(2025, 1, 13, 12, 0, 0, 0, time.UTC), // Monday
			expected: Date(2025, 1, 13),
		},
		{
			name:     "Sunday returns previous Monday",
			input:    time.Date(2025, 1, 19, 12, 0, 0, 0, time.UTC), // Sunday
			expected: Date(2025, 1, 13),                            // Previous Monday
		},
		{
			name:     "Week crossing a month boundary",
			input:    Date(2026, 9, 1), // Tuesday
			expected: Date(2026, 8, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StartOfWeek(tt.input)

			if !result.Equal(tt.expected) {
				t.Errorf("StartOfWeek(%v) = %v, want %v",
					tt.input.Format("2006-01-02 Mon"),
					result.Format("2006-01-02 Mon"),
					tt.expected.Format("2006-01-02 Mon"))
			}
		})
	}
}

func TestEndOfWeek(t *testing.T) {
	input := Date(2025, 12, 31) // Wednesday
	expected := Date(2026, 1, 4)

	result := EndOfWeek(input)

	if !result.Equal(expected) {
		t.Errorf("EndOfWeek(%v) = %v, want %v", input, result, expected)
	}
	if result.Weekday() != time.Sunday {
		t.Errorf("EndOfWeek(%v) weekday = %v, want Sunday", input, result.Weekday())
	}
}

func TestInRange(t *testing.T) {
	start := Date(2026, 8, 31)
	end := Date(2026, 9, 6)

	tests := []struct {
		name  string
		input time.Time
		want  bool
	}{
		{"Start bound is included", start, true},
		{"End bound is included", end, true},
		{"End day with clock is included", time.Date(2026, 9, 6, 23, 59, 0, 0, time.UTC), true},
		{"Day before start", Date(2026, 8, 30), false},
		{"Day after end", Date(2026, 9, 7), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := InRange(tt.input, start, end)

			if result != tt.want {
				t.Errorf("InRange(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}

func TestFormatRU(t *testing.T) {
	input := Date(2026, 8, 31)
	result := FormatRU(input)

	expected := "31.08.2026"
	if result != expected {
		t.Errorf("FormatRU(%v) = %v, want %v", input, result, expected)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			"Russian format DD.MM.YYYY",
			"15.01.2025",
			Date(2025, 1, 15),
			false,
		},
		{
			"ISO format YYYY-MM-DD",
			"2025-01-15",
			Date(2025, 1, 15),
			false,
		},
		{
			"Garbage",
			"15/01/2025",
			time.Time{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDate(tt.input)

			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDate(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}

			if !tt.wantErr && !result.Equal(tt.want) {
				t.Errorf("ParseDate(%v) = %v, want %v", tt.input, result, tt.want)
			}
		})
	}
}
