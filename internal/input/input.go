// Package input reads the files the command-line tools operate on.
package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrInput = errors.New("invalid input")

// ReadComments reads a JSON array of strings from path.
func ReadComments(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}
	return ParseComments(data)
}

// ParseComments decodes data as a JSON array of strings. Blank entries are
// kept; the summarizer decides what to do with them.
func ParseComments(data []byte) ([]string, error) {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON: %v", ErrInput, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after JSON array", ErrInput)
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON array of strings, got %s", ErrInput, jsonKind(raw))
	}

	comments := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %s, not a string", ErrInput, i, jsonKind(item))
		}
		comments = append(comments, s)
	}
	return comments, nil
}

// ReadText reads a UTF-8 text file and trims surrounding whitespace.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInput, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case float64:
		return "a number"
	case string:
		return "a string"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
