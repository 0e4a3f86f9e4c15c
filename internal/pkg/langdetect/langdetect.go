// Package langdetect provides best-effort natural language detection for
// chat messages. Detection never fails a request: anything unreliable or
// unknown falls back to English.
package langdetect

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// DefaultLanguage is used whenever detection is not reliable.
const DefaultLanguage = "English"

// DetectLanguage returns the English name of the message's language
// (e.g. "English", "Spanish"). Short or ambiguous input defaults to
// English rather than erroring.
func DetectLanguage(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return DefaultLanguage
	}

	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return DefaultLanguage
	}

	name := whatlanggo.Langs[info.Lang]
	if name == "" {
		return DefaultLanguage
	}
	return name
}
