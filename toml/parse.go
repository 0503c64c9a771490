// Package toml reads and writes the TOML subset used for configuration:
// tables, dotted keys, basic and literal strings, integers, floats, booleans
// and single-line arrays. Arrays of tables and dates are not supported
package toml

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse turns a document into nested map[string]any
func Parse(data []byte) (map[string]any, error) {
	root := make(map[string]any)
	table := root

	for i, raw := range strings.Split(string(data), "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(stripComment(raw))
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if strings.HasPrefix(line, "[[") {
				return nil, fmt.Errorf("line %d: arrays of tables are not supported", lineNo)
			}
			if !strings.HasSuffix(line, "]") {
				return nil, fmt.Errorf("line %d: unterminated table header", lineNo)
			}
			keys, err := parseKey(line[1 : len(line)-1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			t, err := descend(root, keys)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			table = t
			continue
		}

		eq := indexOutsideQuotes(line, '=')
		if eq < 0 {
			return nil, fmt.Errorf("line %d: expected key = value", lineNo)
		}
		keys, err := parseKey(line[:eq])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		val, err := parseValue(strings.TrimSpace(line[eq+1:]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		parent, err := descend(table, keys[:len(keys)-1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		last := keys[len(keys)-1]
		if _, dup := parent[last]; dup {
			return nil, fmt.Errorf("line %d: duplicate key %s", lineNo, last)
		}
		parent[last] = val
	}
	return root, nil
}

// descend walks or creates nested tables along keys
func descend(m map[string]any, keys []string) (map[string]any, error) {
	for _, k := range keys {
		next, ok := m[k]
		if !ok {
			t := make(map[string]any)
			m[k] = t
			m = t
			continue
		}
		t, ok := next.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("key %s is not a table", k)
		}
		m = t
	}
	return m, nil
}

// parseKey splits a dotted key into bare or quoted parts
func parseKey(s string) ([]string, error) {
	var keys []string
	for _, part := range splitOutsideQuotes(s, '.') {
		part = strings.TrimSpace(part)
		switch {
		case part == "":
			return nil, fmt.Errorf("empty key in %q", s)
		case part[0] == '"' || part[0] == '\'':
			k, err := parseString(part)
			if err != nil {
				return nil, err
			}
			keys = append(keys, k)
		default:
			if !isBareKey(part) {
				return nil, fmt.Errorf("invalid bare key %q", part)
			}
			keys = append(keys, part)
		}
	}
	return keys, nil
}

func parseValue(s string) (any, error) {
	switch {
	case s == "":
		return nil, fmt.Errorf("missing value")
	case s == "true":
		return true, nil
	case s == "false":
		return false, nil
	case s[0] == '"' || s[0] == '\'':
		return parseString(s)
	case s[0] == '[':
		return parseArray(s)
	}

	num := strings.ReplaceAll(s, "_", "")
	if i, err := strconv.ParseInt(num, 0, 64); err == nil {
		return int(i), nil
	}
	if f, err := strconv.ParseFloat(num, 64); err == nil {
		return f, nil
	}
	return nil, fmt.Errorf("invalid value %q", s)
}

func parseString(s string) (string, error) {
	if len(s) < 2 || s[len(s)-1] != s[0] {
		return "", fmt.Errorf("unterminated string %s", s)
	}
	if s[0] == '\'' {
		return s[1 : len(s)-1], nil
	}
	v, err := strconv.Unquote(s)
	if err != nil {
		return "", fmt.Errorf("invalid string %s: %w", s, err)
	}
	return v, nil
}

func parseArray(s string) ([]any, error) {
	if s[len(s)-1] != ']' {
		return nil, fmt.Errorf("unterminated array %s", s)
	}
	arr := make([]any, 0)
	body := strings.TrimSpace(s[1 : len(s)-1])
	if body == "" {
		return arr, nil
	}
	for _, elem := range splitOutsideQuotes(body, ',') {
		elem = strings.TrimSpace(elem)
		if elem == "" {
			// Trailing comma
			continue
		}
		v, err := parseValue(elem)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	return arr, nil
}

func stripComment(line string) string {
	if i := indexOutsideQuotes(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// indexOutsideQuotes finds the first sep that is not inside a string
func indexOutsideQuotes(s string, sep byte) int {
	var quote byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' && quote == '"' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == sep:
			return i
		}
	}
	return -1
}

// splitOutsideQuotes splits on sep outside strings and nested brackets
func splitOutsideQuotes(s string, sep byte) []string {
	var parts []string
	var quote byte
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' && quote == '"' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '[':
			depth++
		case c == ']':
			depth--
		case c == sep && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

func isBareKey(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_' || r == '-') {
			return false
		}
	}
	return s != ""
}
