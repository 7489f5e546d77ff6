package utils

import "strings"

// StripFences removes a surrounding markdown code fence, if any, and trims.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	lines := strings.Split(s, "\n")
	lines = lines[1:]
	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == "```" {
		lines = lines[:n-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// OptionalString returns the trimmed value behind p, or "" when p is nil.
func OptionalString(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}
