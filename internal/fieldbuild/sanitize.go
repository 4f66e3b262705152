package fieldbuild

import (
	"regexp"
	"strings"
)

var (
	invalidNameChars = regexp.MustCompile(`[^a-z0-9_]+`)
	repeatUnderscore = regexp.MustCompile(`_{2,}`)
)

// SanitizeName lowers the name, replaces every character outside [a-z0-9_]
// with an underscore, collapses runs, and trims leading/trailing
// underscores. Sanitizing an already-sanitized name is a no-op.
func SanitizeName(name string) string {
	lowered := strings.ToLower(name)
	replaced := invalidNameChars.ReplaceAllString(lowered, "_")
	collapsed := repeatUnderscore.ReplaceAllString(replaced, "_")
	return strings.Trim(collapsed, "_")
}
