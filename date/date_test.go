package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNew_Normalizes(t *testing.T) {
	if got, want := New(2025, time.October, 32), New(2025, time.November, 1); got != want {
		t.Errorf("New(2025, 10, 32) = %v, want %v", got, want)
	}
}

func TestFromTime(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	morning := time.Date(2025, time.October, 20, 8, 15, 0, 0, loc)
	night := time.Date(2025, time.October, 20, 23, 59, 59, 0, loc)
	if FromTime(morning) != FromTime(night) {
		t.Errorf("FromTime(%v) != FromTime(%v)", morning, night)
	}
	if got, want := FromTime(night), New(2025, time.October, 20); got != want {
		t.Errorf("FromTime(%v) = %v, want %v", night, got, want)
	}
}

func TestDaysLeftInMonth(t *testing.T) {
	testCases := []struct {
		on   string
		want int
	}{
		{"2025-10-31", 1},
		{"2025-10-01", 31},
		{"2025-10-20", 12},
		{"2024-02-01", 29},
		{"2025-02-28", 1},
		{"2025-12-31", 1},
	}
	for _, tc := range testCases {
		t.Run(tc.on, func(t *testing.T) {
			if got := MustParse(tc.on).DaysLeftInMonth(); got != tc.want {
				t.Errorf("DaysLeftInMonth(%s) = %d, want %d", tc.on, got, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"2025-07-01", New(2025, 7, 1), false},
		{"2025-7-1", New(2025, 7, 1), false},
		{"0d", Today(), false},
		{"-1d", Today().Add(-1), false},
		{"yesterday", Date{}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseFrom(t *testing.T) {
	today := New(2025, 10, 20)
	for in, want := range map[string]Date{
		"0d":         today,
		"-20d":       New(2025, 9, 30),
		"3d":         New(2025, 10, 23),
		"2024-02-29": New(2024, 2, 29),
	} {
		got, err := ParseFrom(in, today)
		if err != nil || got != want {
			t.Errorf("ParseFrom(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
}

func TestJSON(t *testing.T) {
	d := New(2025, time.October, 20)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2025-10-20"` {
		t.Errorf("Marshal() = %s", b)
	}
	var got Date
	if err := json.Unmarshal([]byte(`"2025-10-20T14:30:00Z"`), &got); err != nil {
		t.Fatal(err)
	}
	if got != d {
		t.Errorf("Unmarshal(timestamp) = %v, want %v", got, d)
	}
}
