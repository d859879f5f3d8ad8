package util

import "strings"

var nbspFolder = strings.NewReplacer(" ", " ", "\t", " ")

// FoldKey canonicalizes a column header for alias lookup: lowercase, trimmed,
// inner whitespace collapsed. "Sub Order No" and "sub  order no" fold equal.
func FoldKey(key string) string {
	s := nbspFolder.Replace(key)
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// FoldStatus canonicalizes a status cell for comparison.
func FoldStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}
