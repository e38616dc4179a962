package infra

import (
	"strings"
	"unicode/utf8"
)

// CollectCodepoints returns the maximal run of code points in s starting at
// byte offset *pos for which pred holds, and advances *pos to the byte
// offset just past the run. An offset at or past the end of s collects
// nothing.
//
// The returned string shares storage with s; callers that need an owned
// copy must clone it themselves. SkipCodepoints is the non-allocating
// variant for callers that only need the position.
//
// https://infra.spec.whatwg.org/#collect-a-sequence-of-code-points
func CollectCodepoints(s string, pos *int, pred func(rune) bool) string {
	if *pos < 0 || *pos >= len(s) {
		return ""
	}

	start := *pos
	SkipCodepoints(s, pos, pred)
	return s[start:*pos]
}

// SkipCodepoints advances *pos past the maximal run of code points in s
// satisfying pred, discarding the content.
func SkipCodepoints(s string, pos *int, pred func(rune) bool) {
	if *pos < 0 {
		return
	}
	for *pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[*pos:])
		if !pred(r) {
			return
		}
		*pos += size
	}
}

// SkipASCIIWhitespace advances *pos past any run of ASCII whitespace.
//
// https://infra.spec.whatwg.org/#skip-ascii-whitespace
func SkipASCIIWhitespace(s string, pos *int) {
	SkipCodepoints(s, pos, isASCIIWhitespace)
}

// TrimASCIIWhitespace removes leading and trailing ASCII whitespace. The
// result is a slice of s; no allocation occurs.
//
// https://infra.spec.whatwg.org/#strip-leading-and-trailing-ascii-whitespace
func TrimASCIIWhitespace(s string) string {
	return strings.TrimFunc(s, isASCIIWhitespace)
}

// TrimCollapseASCIIWhitespace removes leading and trailing ASCII whitespace
// and replaces every interior run of ASCII whitespace with a single U+0020
// SPACE. The operation is idempotent.
//
// https://infra.spec.whatwg.org/#strip-and-collapse-ascii-whitespace
func TrimCollapseASCIIWhitespace(s string) string {
	s = TrimASCIIWhitespace(s)
	if !strings.ContainsFunc(s, isASCIIWhitespace) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if isASCIIWhitespace(r) {
			if !inRun {
				inRun = true
				b.WriteByte(' ')
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeNewlines replaces every CRLF pair with a single LF, and every
// remaining CR with an LF.
//
// https://infra.spec.whatwg.org/#normalize-newlines
func NormalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// StripNewlines removes every LF and CR code point from s.
//
// https://infra.spec.whatwg.org/#strip-newlines
func StripNewlines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r != '\n' && r != '\r' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
