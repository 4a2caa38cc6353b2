package utils

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// DecodeLooseJSON parses JSON that came out of an LLM-backed service and
// may arrive as pure JSON, JSON inside a markdown code fence, JSON embedded
// in prose, or JSON with minor formatting defects (trailing commas,
// unquoted keys).
func DecodeLooseJSON(input string, target interface{}) error {
	if input == "" {
		return fmt.Errorf("empty input")
	}

	// Most responses are already valid JSON
	if err := json.Unmarshal([]byte(input), target); err == nil {
		return nil
	}

	if fenced := stripCodeFence(input); fenced != "" {
		if err := json.Unmarshal([]byte(fenced), target); err == nil {
			return nil
		}
	}

	if embedded := firstJSONValue(input); embedded != "" {
		if err := json.Unmarshal([]byte(embedded), target); err == nil {
			return nil
		}
	}

	if repaired := repairJSON(input); repaired != "" {
		if err := json.Unmarshal([]byte(repaired), target); err == nil {
			return nil
		}
	}

	return fmt.Errorf("failed to parse JSON from input: %s", truncate(input, 100))
}

var (
	fenceJSONRe = regexp.MustCompile("(?s)```json\\s*(.+?)\\s*```")
	fenceAnyRe  = regexp.MustCompile("(?s)```\\s*(.+?)\\s*```")
)

// stripCodeFence pulls the body out of a ```json ... ``` or bare ``` ... ```
// block when that body looks like JSON
func stripCodeFence(input string) string {
	if m := fenceJSONRe.FindStringSubmatch(input); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}
	if m := fenceAnyRe.FindStringSubmatch(input); len(m) > 1 {
		body := strings.TrimSpace(m[1])
		if strings.HasPrefix(body, "{") || strings.HasPrefix(body, "[") {
			return body
		}
	}
	return ""
}

// firstJSONValue returns the first balanced JSON object or array found in
// surrounding text
func firstJSONValue(input string) string {
	if start := strings.Index(input, "{"); start >= 0 {
		if v := balancedSlice(input[start:], '{', '}'); v != "" {
			return v
		}
	}
	if start := strings.Index(input, "["); start >= 0 {
		if v := balancedSlice(input[start:], '[', ']'); v != "" {
			return v
		}
	}
	return ""
}

// balancedSlice extracts a brace-balanced substring, ignoring braces inside
// string literals
func balancedSlice(input string, open, close rune) string {
	depth := 0
	inString := false
	escape := false
	start := 0

	for i, ch := range input {
		if escape {
			escape = false
			continue
		}
		if ch == '\\' {
			escape = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		if ch == open {
			if depth == 0 {
				start = i
			}
			depth++
		} else if ch == close {
			depth--
			if depth == 0 {
				return input[start : i+1]
			}
		}
	}
	return ""
}

var (
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	unquotedKeyRe   = regexp.MustCompile(`([{,]\s*)(\w+)(\s*:)`)
	controlCharRe   = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F]`)
)

// repairJSON fixes the defects models produce most often: trailing commas,
// unquoted keys, stray control characters, a BOM prefix
func repairJSON(input string) string {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "\ufeff")
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	s = unquotedKeyRe.ReplaceAllString(s, `$1"$2"$3`)
	s = controlCharRe.ReplaceAllString(s, "")
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// PrettyPrintJSON formats a value as indented JSON
func PrettyPrintJSON(v interface{}) (string, error) {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
