// Package sanitize neutralizes HTML-significant characters in user-supplied
// form fields. Values are escaped rather than stripped so the submitter's
// intent survives into the stored row and the notification email.
package sanitize

import (
	"regexp"
	"strings"
)

// ampersandPattern matches a bare ampersand or one that already begins a
// known entity. Keeping existing entities untouched makes Clean idempotent:
// cleaning an already-clean value never changes it again.
var ampersandPattern = regexp.MustCompile(`&(amp;|lt;|gt;|quot;|#39;)?`)

// Clean trims surrounding whitespace and escapes HTML-significant characters.
func Clean(value string) string {
	return Escape(strings.TrimSpace(value))
}

// Escape replaces &, <, >, " and ' with their HTML entities. Already-escaped
// entities are left alone, so Escape(Escape(s)) == Escape(s).
func Escape(value string) string {
	escaped := ampersandPattern.ReplaceAllStringFunc(value, func(match string) string {
		if match == "&" {
			return "&amp;"
		}
		return match
	})

	replacer := strings.NewReplacer(
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(escaped)
}

// HoneypotTriggered reports whether a honeypot field carries a value. The
// field is invisible to real visitors, so any content is a bot signal.
func HoneypotTriggered(value string) bool {
	return strings.TrimSpace(value) != ""
}
