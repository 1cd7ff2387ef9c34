package utils

import (
	"bufio"
	"errors"
	"os"
	"strconv"
	"strings"
)

// ParseEnvVars parses KEY=VALUE pairs separated by commas, semicolons, or newlines.
func ParseEnvVars(input string) (map[string]string, error) {
	result := make(map[string]string)
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return result, nil
	}

	parts := splitEnvInput(trimmed)
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, err := parseAssignment(part)
		if err != nil {
			return nil, err
		}
		result[key] = value
	}

	return result, nil
}

// ParseDotEnv parses dotenv content: one KEY=VALUE per line, with blank
// lines, # comments and an optional "export " prefix. Values may be wrapped
// in single or double quotes; double-quoted values honor Go escapes.
func ParseDotEnv(content string) (map[string]string, error) {
	result := make(map[string]string)
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, err := parseAssignment(line)
		if err != nil {
			return nil, err
		}
		value, err = unquote(value)
		if err != nil {
			return nil, errors.New("invalid env var: " + line)
		}
		result[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// LoadDotEnv reads and parses a dotenv file. A missing file yields an
// empty map.
func LoadDotEnv(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return ParseDotEnv(string(data))
}

func parseAssignment(part string) (string, string, error) {
	key, value, ok := strings.Cut(part, "=")
	if !ok {
		return "", "", errors.New("invalid env var: " + part)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", errors.New("invalid env var: " + part)
	}
	return key, strings.TrimSpace(value), nil
}

func unquote(value string) (string, error) {
	if value == "" {
		return value, nil
	}
	switch value[0] {
	case '"', '\'':
		end := closingQuote(value)
		if end < 0 {
			return "", errors.New("unterminated quote")
		}
		if rest := strings.TrimSpace(value[end+1:]); rest != "" && !strings.HasPrefix(rest, "#") {
			return "", errors.New("unexpected text after quoted value")
		}
		if value[0] == '\'' {
			return value[1:end], nil
		}
		return strconv.Unquote(value[:end+1])
	}
	// strip trailing inline comment from unquoted values
	if i := strings.Index(value, " #"); i >= 0 {
		return strings.TrimSpace(value[:i]), nil
	}
	return value, nil
}

// closingQuote returns the index of the quote closing value[0], or -1.
// Backslash escapes are skipped inside double quotes.
func closingQuote(value string) int {
	q := value[0]
	for i := 1; i < len(value); i++ {
		switch {
		case q == '"' && value[i] == '\\':
			i++
		case value[i] == q:
			return i
		}
	}
	return -1
}

func splitEnvInput(input string) []string {
	return strings.FieldsFunc(input, func(r rune) bool {
		switch r {
		case ',', ';', '\n':
			return true
		default:
			return false
		}
	})
}
