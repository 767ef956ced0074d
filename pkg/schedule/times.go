package schedule

import (
	"strconv"
	"strings"
)

// ParseTimeToMinutes converts a backend "HH:MM" or "HH:MM:SS" string into a
// minute offset from midnight. Input comes from trusted backend rows; a
// malformed string yields 0 for the broken component rather than an error, so
// a bad row produces wrong geometry instead of halting a render pass.
func ParseTimeToMinutes(t string) int {
	parts := strings.Split(t, ":")
	if len(parts) < 2 {
		h, _ := strconv.Atoi(strings.TrimSpace(t))
		return h * 60
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

// FormatMinutes renders a minute offset back to zero-padded "HH:MM".
func FormatMinutes(mins int) string {
	if mins < 0 {
		mins = 0
	}
	h := mins / 60
	m := mins % 60
	return pad2(h) + ":" + pad2(m)
}

// TruncateToHHMM cuts a "HH:MM:SS" wire time down to "HH:MM" for display.
// Shorter strings pass through unchanged.
func TruncateToHHMM(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
