package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-06-01"); !ok {
		t.Error(`IsValidDate("2024-06-01") = false, want true`)
	}
	for _, s := range []string{"", "2024-6-1", "01-06-2024", "2024-02-30"} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidAppVersion(t *testing.T) {
	valid := []string{"1.4.2", "2.0", "3", "10.11.12"}
	invalid := []string{"", "v1.2.3", "1.2.3.4", "1..2", "one.two", "1.2-beta"}
	for _, v := range valid {
		if !IsValidAppVersion(v) {
			t.Errorf("IsValidAppVersion(%q) = false, want true", v)
		}
	}
	for _, v := range invalid {
		if IsValidAppVersion(v) {
			t.Errorf("IsValidAppVersion(%q) = true, want false", v)
		}
	}
}
