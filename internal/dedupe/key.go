// Package dedupe decides whether two files are duplicates of one another.
//
// The decision is gated on filename similarity: files whose normalized
// name stems differ are never duplicates, regardless of content. Pairs
// that pass the gate are compared by embedded metadata (image pairs) or
// by size and content (everything else).
package dedupe

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// suffixPattern strips up to two trailing numeric groups and one
// parenthesized counter from a name stem, covering rename patterns like
// "name 283" / "name 283_1", "photo (2)", and "H1019100_2".
var suffixPattern = regexp.MustCompile(`([-_ ]*\d+)?([-_ ]*\(\d+\))?([-_ ]*\d+)?$`)

// Key returns the comparison key for path: the filename stem, lowercased
// and NFC-normalized, with trailing rename suffixes stripped. Two files
// are candidate duplicates only when their keys are equal.
func Key(path string) string {
	return suffixPattern.ReplaceAllString(stem(path), "")
}

// stem returns the normalized filename stem without the extension.
// NFC normalization keeps differently-composed names (macOS writes NFD)
// from slipping past the gate.
func stem(path string) string {
	base := filepath.Base(path)
	s := strings.TrimSuffix(base, filepath.Ext(base))
	return norm.NFC.String(strings.ToLower(s))
}
