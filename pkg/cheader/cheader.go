// Package cheader pulls float vertex arrays out of C headers, so the
// arrays in a rendering header can be plotted without copy-pasting them
// into a scratch file first.
package cheader

import (
	"fmt"
	"regexp"

	"vplot-go/pkg/vertex"
)

// Matches `static const float name[] = { ... };` (static optional).
var (
	arrayRegex   = regexp.MustCompile(`(?s)(?:static\s+)?const\s+float\s+(\w+)\s*\[\s*\]\s*=\s*\{(.*?)\}\s*;`)
	commentRegex = regexp.MustCompile(`(?s)/\*.*?\*/|//[^\n]*`)
)

// Names lists the float array names declared in src, in order of
// appearance.
func Names(src []byte) []string {
	var names []string
	for _, m := range arrayRegex.FindAllSubmatch(src, -1) {
		names = append(names, string(m[1]))
	}
	return names
}

// Body returns the raw initializer of the named array with comments
// stripped, i.e. the comma-separated number list between the braces.
func Body(src []byte, name string) (string, error) {
	for _, m := range arrayRegex.FindAllSubmatch(src, -1) {
		if string(m[1]) != name {
			continue
		}
		return string(commentRegex.ReplaceAll(m[2], nil)), nil
	}
	return "", fmt.Errorf("no float array %q in header", name)
}

// Extract parses the named array into a vertex sequence.
func Extract(src []byte, name string) (vertex.Sequence, error) {
	body, err := Body(src, name)
	if err != nil {
		return nil, err
	}
	return vertex.ParseString(body)
}
