package infra

// IsASCIITabOrNewline reports whether r is U+0009 TAB, U+000A LF, or
// U+000D CR.
//
// https://infra.spec.whatwg.org/#ascii-tab-or-newline
func IsASCIITabOrNewline(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r'
}

// IsC0Control reports whether r is a C0 control, i.e. in the inclusive
// range U+0000 NULL to U+001F INFORMATION SEPARATOR ONE.
//
// Unlike unicode.IsControl this does not include U+007F DELETE.
//
// https://infra.spec.whatwg.org/#c0-control
func IsC0Control(r rune) bool {
	return r >= 0 && r <= 0x001F
}

// IsC0ControlOrSpace reports whether r is a C0 control or U+0020 SPACE.
//
// https://infra.spec.whatwg.org/#c0-control-or-space
func IsC0ControlOrSpace(r rune) bool {
	return r >= 0 && r <= 0x0020
}

// IsNoncharacter reports whether r is one of the 66 Unicode noncharacters:
// the range U+FDD0 to U+FDEF inclusive, or any code point whose low 16 bits
// are 0xFFFE or 0xFFFF (the last two code points of each of the 17 planes).
//
// https://infra.spec.whatwg.org/#noncharacter
func IsNoncharacter(r rune) bool {
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	low := r & 0xFFFF
	return r >= 0 && r <= 0x10FFFF && (low == 0xFFFE || low == 0xFFFF)
}

// isASCIIWhitespace reports whether r is ASCII whitespace: TAB, LF, FF, CR,
// or SPACE.
//
// https://infra.spec.whatwg.org/#ascii-whitespace
func isASCIIWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\f' || r == '\r'
}
