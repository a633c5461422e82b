package internal

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// MacEncoding tells BuildMac which side of the exchange the values come from.
type MacEncoding int

const (
	// MacRequest length-prefixes every field, empty ones as "0".
	MacRequest MacEncoding = iota
	// MacResponse writes "-" for fields the gateway left empty or omitted.
	MacResponse
)

// BuildMac concatenates, in the given order, the character length of each
// value followed by the value itself. Keys missing from values count as
// empty strings.
func BuildMac(fields []string, values map[string]string, encoding MacEncoding) string {
	var message strings.Builder
	for _, field := range fields {
		value := values[field]
		length := utf8.RuneCountInString(value)
		if encoding == MacResponse && length == 0 {
			message.WriteByte('-')
			continue
		}
		message.WriteString(strconv.Itoa(length))
		message.WriteString(value)
	}
	return message.String()
}
