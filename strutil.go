package pinview

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kebab converts a camel or pascal cased name to kebab case:
// "nativeType" becomes "native-type" and "DatePicker" becomes "date-picker".
// Every upper case letter starts a word, so acronyms split letter by letter
// ("HTMLElement" becomes "h-t-m-l-element"). Whitespace separates words and
// is dropped. No separator is added after '-', '_' or '.', which keeps
// modifiers like "model.Lazy" intact. Lower case names without whitespace
// are returned unchanged.
func Kebab(name string) string {
	if strings.ToLower(name) == name && !strings.ContainsFunc(name, unicode.IsSpace) {
		return name
	}
	var sb strings.Builder
	sb.Grow(len(name) + 4)
	prev := rune(-1)
	word := false
	for _, r := range name {
		if unicode.IsSpace(r) {
			word = true
			continue
		}
		if (word || unicode.IsUpper(r)) && prev != -1 && prev != '-' && prev != '_' && prev != '.' {
			sb.WriteByte('-')
		}
		sb.WriteRune(unicode.ToLower(r))
		prev = r
		word = false
	}
	return sb.String()
}

// lowerFirst lower-cases the first letter of s.
func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

// upperFirst upper-cases the first letter of s.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// joinPath joins the non-empty segments with dots.
func joinPath(segments ...string) string {
	parts := segments[:0:0]
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ".")
}
