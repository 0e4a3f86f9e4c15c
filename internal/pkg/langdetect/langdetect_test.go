package langdetect

import (
	"testing"
)

func TestDetectLanguageFallsBackToEnglish(t *testing.T) {
	// Inputs that cannot be detected reliably must never fail, only
	// fall back.
	for _, text := range []string{"", "   ", "?!#@", "42"} {
		if got := DetectLanguage(text); got != DefaultLanguage {
			t.Errorf("DetectLanguage(%q) = %q, want %q", text, got, DefaultLanguage)
		}
	}
}

func TestDetectLanguageEnglish(t *testing.T) {
	text := "What are the library opening hours during the examination period this semester?"
	if got := DetectLanguage(text); got != "English" {
		t.Errorf("DetectLanguage = %q, want English", got)
	}
}
