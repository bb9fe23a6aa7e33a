package wheel

import (
	"strconv"
	"strings"
)

// DefaultNames seeds a fresh wheel.
var DefaultNames = []string{
	"Ram",
	"Shyam",
	"Radhe",
	"Rahul",
	"Ayush",
	"Atharv",
	"Kusum",
}

// ParseNames splits multi-line input into names. Lines are trimmed and
// blank lines dropped.
func ParseNames(raw string) []string {
	var names []string
	for _, line := range strings.Split(raw, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// RemoveName returns names without any entry equal to name.
func RemoveName(names []string, name string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}

// ParseSeconds reads a spin duration typed by the user. ok is false for
// anything that is not a whole number.
func ParseSeconds(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}
