package domain

import (
	"regexp"
	"strings"
)

// Value is a single frontmatter field value: either a scalar string or an
// ordered list of strings.
type Value struct {
	Scalar string
	List   []string
	IsList bool
}

// ScalarValue wraps a string in a scalar Value
func ScalarValue(s string) Value {
	return Value{Scalar: s}
}

// ListValue wraps a string slice in a list Value
func ListValue(items []string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{List: items, IsList: true}
}

// fieldState tracks what the parser is accumulating for the current field
type fieldState int

const (
	stateIdle          fieldState = iota // no field open
	stateScalarPending                   // accumulating scalar continuation lines
	stateArrayPending                    // accumulating "- item" lines
)

var fieldPattern = regexp.MustCompile(`^(\w+):\s*(.*)$`)

// ParseFrontmatter extracts the leading delimited header block from a document
// and returns its fields. Returns an empty map when the document has no header
// block (no opening "---" on the first line, or no closing "---").
//
// The supported grammar is the constrained subset the catalog relies on:
// scalar "key: value", quoted scalars, inline arrays "[a, b, c]", and block
// arrays of "- item" lines. It is deliberately not a YAML parser.
func ParseFrontmatter(content string) map[string]Value {
	fields := map[string]Value{}

	block, ok := headerBlock(content)
	if !ok {
		return fields
	}

	state := stateIdle
	currentKey := ""
	var buffer []string

	flush := func() {
		if state == stateIdle || currentKey == "" {
			return
		}
		if state == stateArrayPending {
			fields[currentKey] = ListValue(buffer)
		} else {
			fields[currentKey] = ScalarValue(strings.Join(buffer, "\n"))
		}
		state = stateIdle
		currentKey = ""
		buffer = nil
	}

	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)

		// Comment lines are skipped regardless of state
		if strings.HasPrefix(trimmed, "#") {
			continue
		}

		if m := fieldPattern.FindStringSubmatch(line); m != nil {
			flush()
			key, rest := m[1], m[2]

			switch {
			case strings.HasPrefix(rest, "["):
				fields[key] = ListValue(parseInlineArray(rest))
			case rest != "":
				fields[key] = ScalarValue(unquote(rest))
			default:
				state = stateArrayPending
				currentKey = key
				buffer = []string{}
			}
			continue
		}

		if trimmed == "" {
			continue
		}

		switch state {
		case stateArrayPending:
			if item, ok := strings.CutPrefix(trimmed, "- "); ok {
				buffer = append(buffer, strings.TrimSpace(item))
			} else {
				// Not an array item after all: fall back to a
				// multi-line scalar for this field.
				state = stateScalarPending
				buffer = append(buffer, trimmed)
			}
		case stateScalarPending:
			buffer = append(buffer, trimmed)
		}
	}

	flush()
	return fields
}

// headerBlock returns the text between the opening "---" (which must start the
// document) and the next "---" line.
func headerBlock(content string) (string, bool) {
	content = strings.TrimPrefix(content, "\ufeff")
	if !strings.HasPrefix(content, "---") {
		return "", false
	}
	first := strings.SplitN(content, "\n", 2)
	if strings.TrimSpace(first[0]) != "---" || len(first) < 2 {
		return "", false
	}
	rest := first[1]

	end := -1
	offset := 0
	for _, line := range strings.SplitAfter(rest, "\n") {
		if strings.TrimSpace(strings.TrimSuffix(line, "\n")) == "---" {
			end = offset
			break
		}
		offset += len(line)
	}
	if end < 0 {
		// Handle a closing delimiter with no trailing newline
		if strings.TrimSpace(rest[offset:]) == "---" {
			return rest[:offset], true
		}
		return "", false
	}
	return rest[:end], true
}

// parseInlineArray parses "[a, b, c]" into its items, stripping one layer of
// surrounding quotes from each.
func parseInlineArray(rest string) []string {
	inner := strings.TrimPrefix(rest, "[")
	if i := strings.LastIndex(inner, "]"); i >= 0 {
		inner = inner[:i]
	}
	if strings.TrimSpace(inner) == "" {
		return []string{}
	}

	parts := strings.Split(inner, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		items = append(items, unquote(strings.TrimSpace(p)))
	}
	return items
}

// unquote strips a single layer of matching surrounding quotes
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
