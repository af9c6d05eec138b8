package errors

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
)

// ValidatePath validates a data view or resource path supplied by a user.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateLocale checks that tag is a well-formed BCP 47 language tag
// and returns the parsed tag.
func ValidateLocale(tag string) (language.Tag, error) {
	if strings.TrimSpace(tag) == "" {
		return language.Und, New(ErrCodeInvalidLocale, "locale cannot be empty")
	}
	t, err := language.Parse(tag)
	if err != nil {
		return language.Und, Wrap(ErrCodeInvalidLocale, err, "invalid locale %q", tag)
	}
	return t, nil
}

// ValidateIndex checks that i addresses an element of a sequence of length n.
// what names the sequence in the error message.
func ValidateIndex(what string, i, n int) error {
	if i < 0 {
		return New(ErrCodeInvalidIndex, "%s index cannot be negative: %d", what, i)
	}
	if i >= n {
		return New(ErrCodeInvalidIndex, "%s index %d out of range (have %d)", what, i, n)
	}
	return nil
}
