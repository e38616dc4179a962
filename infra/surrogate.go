package infra

// UTF-16 surrogate ranges. These operate on raw 16-bit code units rather
// than runes, since a lone surrogate is never a valid Unicode scalar value.
const (
	leadingSurrogateMin  = 0xD800
	leadingSurrogateMax  = 0xDBFF
	trailingSurrogateMin = 0xDC00
	trailingSurrogateMax = 0xDFFF
)

// IsSurrogate reports whether u is a UTF-16 surrogate code unit, i.e. in
// the inclusive range 0xD800 to 0xDFFF.
//
// https://infra.spec.whatwg.org/#surrogate
func IsSurrogate(u uint16) bool {
	return u >= leadingSurrogateMin && u <= trailingSurrogateMax
}

// IsLeadingSurrogate reports whether u is in the inclusive range 0xD800 to
// 0xDBFF.
//
// https://infra.spec.whatwg.org/#leading-surrogate
func IsLeadingSurrogate(u uint16) bool {
	return u >= leadingSurrogateMin && u <= leadingSurrogateMax
}

// IsTrailingSurrogate reports whether u is in the inclusive range 0xDC00 to
// 0xDFFF.
//
// https://infra.spec.whatwg.org/#trailing-surrogate
func IsTrailingSurrogate(u uint16) bool {
	return u >= trailingSurrogateMin && u <= trailingSurrogateMax
}
