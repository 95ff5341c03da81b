package rdparser

import (
	"fmt"
	"strings"
)

// unquoteString decodes a double-quoted string literal.  Unlike
// strconv.Unquote it permits literal newlines, which the lexer accepts
// inside string literals.
func unquoteString(text string) (string, error) {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return "", fmt.Errorf("not a string literal: %s", text)
	}
	body := text[1 : len(text)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}
	var buf strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			buf.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("trailing backslash in string literal")
		}
		switch body[i] {
		case 'n':
			buf.WriteByte('\n')
		case 't':
			buf.WriteByte('\t')
		case 'r':
			buf.WriteByte('\r')
		case '\\':
			buf.WriteByte('\\')
		case '"':
			buf.WriteByte('"')
		case '0':
			buf.WriteByte(0)
		default:
			return "", fmt.Errorf("invalid escape sequence \\%c", body[i])
		}
	}
	return buf.String(), nil
}
