// Package render detects placeholder tokens in message templates and fills them in
// with per-recipient values.
package render

import (
	"regexp"
	"strings"
)

// Placeholders is the closed placeholder vocabulary, in display order.
var Placeholders = []string{"xxx", "yyy", "sdt", "ttt", "zzz", "www", "uuu", "vvv"}

// Fields maps a lower-case placeholder to its value.
type Fields map[string]string

var (
	detectRx = regexp.MustCompile(`(?i)(?:\[\s*(` + alternation() + `)\s*\]|\{\s*(` + alternation() + `)\s*\}|\(\s*(` + alternation() + `)\s*\)|\b(` + alternation() + `)\b)`)
	renderRx = buildRenderRx()
)

func alternation() string {
	return strings.Join(Placeholders, "|")
}

func buildRenderRx() map[string]*regexp.Regexp {
	rx := make(map[string]*regexp.Regexp, len(Placeholders))
	for _, p := range Placeholders {
		rx[p] = regexp.MustCompile(`(?i)(?:\[\s*` + p + `\s*\]|\{\s*` + p + `\s*\}|\(\s*` + p + `\s*\)|\b` + p + `\b)`)
	}
	return rx
}

// Detect returns the placeholders present in content, each once, in vocabulary order.
func Detect(content string) []string {
	found := make(map[string]bool)
	for _, groups := range detectRx.FindAllStringSubmatch(content, -1) {
		for _, g := range groups[1:] {
			if g != "" {
				found[strings.ToLower(g)] = true
			}
		}
	}

	variables := []string{}
	for _, p := range Placeholders {
		if found[p] {
			variables = append(variables, p)
		}
	}
	return variables
}

// Render replaces every occurrence of every placeholder, bare or bracketed and in any
// letter case, with the matching field. Missing fields render as "".
func Render(content string, fields Fields) string {
	for _, p := range Placeholders {
		value := fields[p]
		content = renderRx[p].ReplaceAllLiteralString(content, value)
	}
	return content
}
