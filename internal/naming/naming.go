package naming

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Component name suffixes
const (
	SuffixRequest  = "Request"
	SuffixResponse = "Response"
)

// newTitleCaser returns a caser that title-cases without lowering the rest.
// cases.Caser keeps state and is not safe for concurrent use.
func newTitleCaser() cases.Caser {
	return cases.Title(language.Und, cases.NoLower)
}

// ToTitleCase converts the first letter to title case and keeps the remainder as-is.
// Example: "createOrder" -> "CreateOrder"
// Example: "post" -> "Post"
func ToTitleCase(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	caser := newTitleCaser()
	return caser.String(s[:size]) + s[size:]
}

// Capitalize title-cases every whitespace-separated word of s, joins the words
// and drops runes that are not allowed in a component name.
// Example: "createOrder" -> "CreateOrder"
// Example: "create order" -> "CreateOrder"
// Example: "user_id" -> "User_id"
func Capitalize(s string) string {
	var b strings.Builder
	for _, word := range strings.Fields(s) {
		b.WriteString(ToTitleCase(word))
	}
	return Sanitize(b.String())
}

// Sanitize removes runes that OpenAPI does not allow in component keys.
// Allowed: ASCII letters, digits, '.', '-' and '_'.
func Sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return -1
		}
	}, name)
}

// ComponentName builds a component name for an operation:
// {Method}{Name}{suffix}, e.g. ("post", "CreateOrder", "Request") -> "PostCreateOrderRequest".
func ComponentName(method, name, suffix string) string {
	return Capitalize(method) + Capitalize(name) + suffix
}

// Nested appends a capitalized property name to a component name prefix.
// A property with no usable runes becomes "Property" so the child never
// shadows the prefix component.
// Example: ("PostCreateOrderRequest", "address") -> "PostCreateOrderRequestAddress"
func Nested(prefix, property string) string {
	suffix := Capitalize(property)
	if suffix == "" {
		suffix = "Property"
	}
	return prefix + suffix
}
