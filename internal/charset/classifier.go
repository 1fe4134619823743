// Package charset implements the pure, stateless byte predicates the lexer
// dispatches on (spec.md §4.A). Every predicate operates on a single byte;
// none allocate or carry state.
package charset

// IsNewline reports whether b is the line-feed character.
func IsNewline(b byte) bool { return b == '\n' }

// IsSpace reports whether b is an ordinary horizontal space or tab.
func IsSpace(b byte) bool { return b == ' ' || b == '\t' }

// IsWhitespace reports whether b is space, newline, tab, carriage-return,
// form-feed, or vertical-tab.
func IsWhitespace(b byte) bool {
	switch b {
	case ' ', '\n', '\t', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}

// IsAlpha reports whether b is an ASCII letter.
func IsAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsUnderscore reports whether b is the underscore character.
func IsUnderscore(b byte) bool { return b == '_' }

// IsAlnumUnderscore reports whether b may appear after the first character
// of an identifier.
func IsAlnumUnderscore(b byte) bool {
	return IsAlpha(b) || IsDigit(b) || IsUnderscore(b)
}

// IsIdentStart reports whether b may start an identifier: a letter or
// underscore.
func IsIdentStart(b byte) bool { return IsAlpha(b) || IsUnderscore(b) }

// punctuators is the closed set of single bytes the catalogue assigns a
// fixed-spelling Kind to, outside of identifiers, digits, and whitespace.
var punctuators = map[byte]bool{
	'(': true, ')': true, '[': true, ']': true, '{': true, '}': true,
	',': true, '.': true, ':': true, ';': true, '@': true, '#': true,
	'$': true, '?': true, '`': true, '\\': true,
	'+': true, '-': true, '*': true, '/': true, '%': true,
	'&': true, '|': true, '^': true, '~': true,
	'=': true, '!': true, '<': true, '>': true,
	'\'': true,
}

// IsPunctuator reports whether b is one of the bytes that can begin an
// operator, punctuator, or string literal.
func IsPunctuator(b byte) bool { return punctuators[b] }

// IsValidSourceByte reports whether b belongs to the accepted source
// alphabet: printable 7-bit ASCII (0x20-0x7E) plus the whitespace
// controls horizontal-tab, line-feed, vertical-tab, form-feed, and
// carriage-return (spec.md §6). The NUL byte, and every other control
// character, is rejected.
func IsValidSourceByte(b byte) bool {
	if b >= 0x20 && b <= 0x7E {
		return true
	}
	switch b {
	case '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
