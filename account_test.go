package drip

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseAccount(t *testing.T) {
	testCases := []struct {
		in   string
		want Account
	}{
		{"Bank", Bank},
		{"cash", Cash},
		{"MainSavings", MainSavings},
		{"main-savings", MainSavings},
		{"Allowances", Allowances},
		{"Bucket:Vacation", Bucket("Vacation")},
		{"Bucket:new car", Bucket("new car")},
	}
	for _, tc := range testCases {
		got, err := ParseAccount(tc.in)
		if err != nil {
			t.Errorf("ParseAccount(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAccount(%q) = %v, want %v", tc.in, got, tc.want)
		}
		if back, _ := ParseAccount(got.String()); back != got {
			t.Errorf("ParseAccount(%q.String()) = %v", got, back)
		}
	}

	for _, in := range []string{"", "Wallet", "Bucket:"} {
		if _, err := ParseAccount(in); !errors.Is(err, ErrInvalidAccount) {
			t.Errorf("ParseAccount(%q) error = %v, want ErrInvalidAccount", in, err)
		}
	}
}

func TestAccount_UnknownIsPreserved(t *testing.T) {
	var a Account
	if err := json.Unmarshal([]byte(`"LegacyPot"`), &a); err != nil {
		t.Fatal(err)
	}
	if a.IsKnown() {
		t.Errorf("%v.IsKnown() = true", a)
	}
	got, _ := json.Marshal(a)
	if string(got) != `"LegacyPot"` {
		t.Errorf("json.Marshal() = %s, want %q", got, "LegacyPot")
	}
}

func TestParseExpenseSource(t *testing.T) {
	testCases := []struct {
		in   string
		want ExpenseSource
	}{
		{"Bank", SourceBank},
		{"cash", SourceCash},
		{"SavingsConcept", SourceSavingsConcept},
		{"savings", SourceSavingsConcept},
	}
	for _, tc := range testCases {
		got, err := ParseExpenseSource(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseExpenseSource(%q) = %v, %v, want %v", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseExpenseSource("card"); err == nil {
		t.Errorf("ParseExpenseSource(card) succeeded")
	}
}
