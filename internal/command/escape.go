package command

import "strings"

// Substitution order matters: '%' goes first so the escapes produced by the
// later substitutions are not themselves re-escaped.
var (
	dataEscaper = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
	)

	propertyEscaper = strings.NewReplacer(
		"%", "%25",
		"\r", "%0D",
		"\n", "%0A",
		":", "%3A",
		",", "%2C",
	)

	dataUnescaper = strings.NewReplacer(
		"%0D", "\r",
		"%0A", "\n",
		"%25", "%",
	)

	propertyUnescaper = strings.NewReplacer(
		"%0D", "\r",
		"%0A", "\n",
		"%3A", ":",
		"%2C", ",",
		"%25", "%",
	)
)

// EscapeData escapes a command payload.
func EscapeData(s string) string {
	return dataEscaper.Replace(s)
}

// EscapeProperty escapes a property value. It escapes everything EscapeData
// does, plus ':' and ','.
func EscapeProperty(s string) string {
	return propertyEscaper.Replace(s)
}

// UnescapeData reverses EscapeData.
func UnescapeData(s string) string {
	return dataUnescaper.Replace(s)
}

// UnescapeProperty reverses EscapeProperty.
func UnescapeProperty(s string) string {
	return propertyUnescaper.Replace(s)
}
