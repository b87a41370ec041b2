package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// ExtractJSON pulls a JSON object out of a model reply. Models wrap their
// answer in prose, markdown fences, or reasoning tags often enough that a
// bare json.Unmarshal is not good enough; each strategy below handles one
// wrapping style, tried in order. A top-level array is unwrapped to its
// first object element. When every strategy fails, the returned error
// carries the parse error from the direct attempt.
func ExtractJSON(content string) (map[string]any, error) {
	for _, strategy := range []func(string) (map[string]any, bool){
		extractDirect,
		extractFenced,
		extractBalanced,
		extractAfterThink,
	} {
		if obj, ok := strategy(content); ok {
			return obj, nil
		}
	}

	var obj map[string]any
	err := json.Unmarshal([]byte(strings.TrimSpace(content)), &obj)
	if err == nil {
		err = errors.New("reply is not a JSON object")
	}
	return nil, fmt.Errorf("no JSON object found: %w", err)
}

func extractDirect(content string) (map[string]any, bool) {
	return parseObject(strings.TrimSpace(content))
}

func extractFenced(content string) (map[string]any, bool) {
	for _, m := range fencedBlockRe.FindAllStringSubmatch(content, -1) {
		if obj, ok := parseObject(strings.TrimSpace(m[1])); ok {
			return obj, true
		}
	}
	return nil, false
}

// extractBalanced scans for the first balanced {...} span, skipping braces
// inside string literals.
func extractBalanced(content string) (map[string]any, bool) {
	start := strings.IndexByte(content, '{')
	for start >= 0 {
		depth := 0
		inString := false
		escaped := false
		for i := start; i < len(content); i++ {
			c := content[i]
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				if inString {
					escaped = true
				}
			case '"':
				inString = !inString
			case '{':
				if !inString {
					depth++
				}
			case '}':
				if !inString {
					depth--
					if depth == 0 {
						if obj, ok := parseObject(content[start : i+1]); ok {
							return obj, true
						}
						i = len(content)
					}
				}
			}
		}
		next := strings.IndexByte(content[start+1:], '{')
		if next < 0 {
			break
		}
		start = start + 1 + next
	}
	return nil, false
}

// extractAfterThink handles reasoning models that stream a <think> block
// before the answer.
func extractAfterThink(content string) (map[string]any, bool) {
	idx := strings.LastIndex(content, "</think>")
	if idx < 0 {
		return nil, false
	}
	tail := content[idx+len("</think>"):]
	if obj, ok := parseObject(strings.TrimSpace(tail)); ok {
		return obj, true
	}
	return extractBalanced(tail)
}

func parseObject(s string) (map[string]any, bool) {
	if s == "" {
		return nil, false
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err == nil {
		return obj, true
	}
	var arr []any
	if err := json.Unmarshal([]byte(s), &arr); err == nil && len(arr) > 0 {
		if first, ok := arr[0].(map[string]any); ok {
			return first, true
		}
	}
	return nil, false
}
