package team

import "testing"

func TestInitials(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{name: "Men's 1st XI", want: "M1X"},
		{name: "Under 12s", want: "U1"},
		{name: "Lions", want: "LI"},
		{name: "", want: ""},
		{name: "   ", want: ""},
		{name: "A", want: "A"},
		{name: "  eastern   districts  ", want: "ED"},
		{name: "östra", want: "ÖS"},
	}

	for _, tc := range cases {
		if got := Initials(tc.name); got != tc.want {
			t.Fatalf("Initials(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestTeamShortName(t *testing.T) {
	if got := (Team{Name: "Women's 2nd XI"}).ShortName(); got != "W2X" {
		t.Fatalf("unexpected derived short name: %q", got)
	}
	if got := (Team{Name: "Women's 2nd XI", Abbreviation: "W2"}).ShortName(); got != "W2" {
		t.Fatalf("expected stored abbreviation, got %q", got)
	}
}

func TestTeamValidate(t *testing.T) {
	if err := (Team{ID: "t1"}).Validate(); err == nil {
		t.Fatalf("expected error for missing name")
	}
	if err := (Team{ID: "t1", Name: "Lions"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
