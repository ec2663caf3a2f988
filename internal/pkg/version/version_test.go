package version

import "testing"

func TestParseMajor(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"1.4.2", 1, true},
		{"2.0.0", 2, true},
		{"10.1", 10, true},
		{"3", 3, true},
		{" 1.2.3 ", 1, true},
		{"", 0, false},
		{"v1.2.3", 0, false},
		{".1.2", 0, false},
		{"-1.0.0", 0, false},
		{"abc", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseMajor(c.input)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseMajor(%q) = (%d, %v), want (%d, %v)", c.input, got, ok, c.want, c.ok)
		}
	}
}
