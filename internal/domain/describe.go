package domain

import "strings"

// ExtractDescription pulls a free-text description from a tool page: a
// "**Description:**" labeled line if present, else the first plain paragraph
// line after the title, else FallbackDescription.
func ExtractDescription(content string) string {
	body := content
	if rest, ok := afterHeader(content); ok {
		body = rest
	}

	sawTitle := false
	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)

		if labeled, ok := strings.CutPrefix(trimmed, "**Description:**"); ok {
			if d := strings.TrimSpace(labeled); d != "" {
				return d
			}
			continue
		}

		if strings.HasPrefix(trimmed, "#") {
			sawTitle = true
			continue
		}
		if !sawTitle || trimmed == "" || strings.HasPrefix(trimmed, "**") {
			continue
		}
		return trimmed
	}

	return FallbackDescription
}

// afterHeader returns the document body following the closing header
// delimiter
func afterHeader(content string) (string, bool) {
	if !strings.HasPrefix(content, "---") {
		return "", false
	}
	parts := strings.SplitN(content, "\n", 2)
	if len(parts) < 2 {
		return "", false
	}

	lines := strings.Split(parts[1], "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			return strings.Join(lines[i+1:], "\n"), true
		}
	}
	return "", false
}
