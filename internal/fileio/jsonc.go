// Copyright (c) 2026 Jacktogon
// gotools - terminal and system utility toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package fileio bundles small file plumbing helpers: a JSONC loader,
// chunked reads and writes, CSV appends and Zstandard pack/unpack.
package fileio

import (
	"encoding/json"
	"fmt"
	"os"
)

// StripJSONCComments removes // line comments and /* */ block comments from
// JSONC input. String literals are honored, so comment markers inside values
// (e.g. URLs) survive untouched.
func StripJSONCComments(data []byte) []byte {
	out := make([]byte, 0, len(data))

	const (
		code = iota
		inString
		lineComment
		blockComment
	)
	state := code

	for i := 0; i < len(data); i++ {
		c := data[i]
		switch state {
		case code:
			switch {
			case c == '"':
				state = inString
				out = append(out, c)
			case c == '/' && i+1 < len(data) && data[i+1] == '/':
				state = lineComment
				i++
			case c == '/' && i+1 < len(data) && data[i+1] == '*':
				state = blockComment
				i++
			default:
				out = append(out, c)
			}
		case inString:
			out = append(out, c)
			if c == '\\' && i+1 < len(data) {
				out = append(out, data[i+1])
				i++
			} else if c == '"' {
				state = code
			}
		case lineComment:
			if c == '\n' {
				state = code
				out = append(out, c)
			}
		case blockComment:
			if c == '*' && i+1 < len(data) && data[i+1] == '/' {
				state = code
				i++
			}
		}
	}

	return out
}

// ReadJSONC loads a .jsonc file, strips its comments and unmarshals the
// remainder. When required keys are given, each must be present at the top
// level of the document.
func ReadJSONC(path string, required ...string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var m map[string]any
	if err := json.Unmarshal(StripJSONCComments(data), &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, key := range required {
		if _, ok := m[key]; !ok {
			return nil, fmt.Errorf("required key %q missing in %s", key, path)
		}
	}

	return m, nil
}
