package negotiationtime

import (
	"testing"
	"time"
)

type fakeClock struct{ at time.Time }

func (c fakeClock) Now() time.Time { return c.at }

func TestParseUserTimeInput(t *testing.T) {
	// Tuesday noon UTC.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := fakeClock{at: now}
	parser := NewTimeParser()

	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "bare HH:MM later today",
			input: "19:00",
			want:  time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC),
		},
		{
			name:  "bare HH:MM already passed rolls to tomorrow",
			input: "08:30",
			want:  time.Date(2026, 3, 11, 8, 30, 0, 0, time.UTC),
		},
		{
			name:  "tomorrow with casual time",
			input: "tomorrow at 7pm",
			want:  time.Date(2026, 3, 11, 19, 0, 0, 0, time.UTC),
		},
		{
			name:  "compact am/pm form",
			input: "932pm",
			want:  time.Date(2026, 3, 10, 21, 32, 0, 0, time.UTC),
		},
		{
			name:    "empty input",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "gibberish",
			input:   "whenever works for you",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseUserTimeInput(tt.input, time.UTC, clock)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parsed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRespectsTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	parser := NewTimeParser()

	got, err := parser.ParseUserTimeInput("20:00", loc, fakeClock{at: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 20:00 Berlin (CET, UTC+1 on this date) is 19:00 UTC.
	want := time.Date(2026, 3, 10, 19, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parsed = %v, want %v", got, want)
	}
}
