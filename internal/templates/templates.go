// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package templates holds the starter programs shown in an empty editor.
package templates

import (
	"embed"
	"fmt"
	"path"
	"strings"
)

//go:embed files/*.txt
var files embed.FS

// fallback is served for languages without a template of their own.
const fallback = "cpp"

var aliases = map[string]string{
	"c":          "c",
	"c++":        "cpp",
	"cpp":        "cpp",
	"python":     "python",
	"python3":    "python",
	"py":         "python",
	"java":       "java",
	"javascript": "javascript",
	"js":         "javascript",
	"node":       "javascript",
	"nodejs":     "javascript",
	"go":         "go",
	"golang":     "go",
}

// Provider returns the default source for a language.
type Provider struct {
	sources map[string]string
}

// NewProvider loads every embedded template.
func NewProvider() (*Provider, error) {
	entries, err := files.ReadDir("files")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	sources := make(map[string]string, len(entries))
	for _, e := range entries {
		data, err := files.ReadFile(path.Join("files", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read template %s: %w", e.Name(), err)
		}
		sources[strings.TrimSuffix(e.Name(), ".txt")] = strings.TrimRight(string(data), "\n")
	}

	if _, ok := sources[fallback]; !ok {
		return nil, fmt.Errorf("fallback template %q is missing", fallback)
	}

	return &Provider{sources: sources}, nil
}

// Default returns the starter program for language. Names are matched
// case-insensitively, a trailing version such as "Python (3.8.1)" is ignored,
// and unknown languages get the C++ program.
func (p *Provider) Default(language string) string {
	if src, ok := p.sources[canonical(language)]; ok {
		return src
	}
	return p.sources[fallback]
}

func canonical(language string) string {
	name := strings.ToLower(strings.TrimSpace(language))
	if i := strings.Index(name, " ("); i >= 0 {
		name = name[:i]
	}
	return aliases[name]
}
