package util

import "strings"

// StripCodeFences removes a surrounding markdown code fence from model output.
// Models routinely wrap "JSON only" replies in ```json fences anyway.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
