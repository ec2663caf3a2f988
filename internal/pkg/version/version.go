package version

import (
	"strconv"
	"strings"
)

// ParseMajor extracts the leading numeric component of a "major.minor.patch"
// version string. Returns 0 and false when the string has no numeric prefix.
func ParseMajor(v string) (int, bool) {
	v = strings.TrimSpace(v)
	head, _, _ := strings.Cut(v, ".")
	major, err := strconv.Atoi(head)
	if err != nil || major < 0 {
		return 0, false
	}
	return major, true
}
