package security

import "testing"

func TestValidEmail(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"user@example.com", true},
		{"first.last@mail.example.co.kr", true},
		{"under_score-dash@host.io", true},
		{"", false},
		{"no-at-sign", false},
		{"user@", false},
		{"@example.com", false},
		{"user@nodot", false},
		{"user@a.b.c.d.e", false},
		{"sp ace@example.com", false},
	}
	for _, c := range cases {
		if got := ValidEmail(c.in); got != c.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestValidBirthDate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"20000229", true},  // 2000 divisible by 400
		{"19000229", false}, // 1900 divisible by 100 but not 400
		{"19960229", true},
		{"19970229", false},
		{"20230230", false}, // February has no 30th
		{"20230431", false}, // April has no 31st
		{"20231231", true},
		{"20231301", false},
		{"20231200", false},
		{"18991231", false}, // before supported range
		{"30000101", false}, // future
		{"2023123", false},
		{"abcd0101", false},
		{"", false},
	}
	for _, c := range cases {
		if got := ValidBirthDate(c.in); got != c.want {
			t.Errorf("ValidBirthDate(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
