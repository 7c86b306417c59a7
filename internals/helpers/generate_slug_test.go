package helper

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Modern Indian History", "modern-indian-history"},
		{"  Art & Culture!  ", "art-culture"},
		{"NCERT Class-11 (Geography)", "ncert-class-11-geography"},
		{"---", ""},
		{"", ""},
		{"Polity   &   Governance", "polity-governance"},
	}
	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Fatalf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCutToLenTrimsDanglingDash(t *testing.T) {
	if got := cutToLen("ancient-history", 8); got != "ancient" {
		t.Fatalf("cutToLen = %q, want %q", got, "ancient")
	}
	if got := cutToLen("short", 100); got != "short" {
		t.Fatalf("cutToLen should leave short strings alone, got %q", got)
	}
	if got := cutToLen("abc", 0); got != "abc" {
		t.Fatalf("zero cap means no cut, got %q", got)
	}
}
