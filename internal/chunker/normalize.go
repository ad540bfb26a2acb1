package chunker

import "strings"

var newlineReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Normalize converts "\r\n" and lone "\r" line endings to "\n".
// Every offset produced by this package refers to the normalized text, so
// callers that persist text and later index into it must store this form.
func Normalize(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	return newlineReplacer.Replace(text)
}
