// Package infra implements the code-point and string primitives from the
// WHATWG Infra Standard (https://infra.spec.whatwg.org/) that the HTML
// microsyntax parsers are defined in terms of: scalar-value predicates,
// UTF-16 surrogate detection, and position-based collect/skip scanning over
// strings.
//
// All functions are pure and never fail. Scanning functions take a byte
// offset into the string and advance it past the matched run; an offset at
// or past the end of the string simply matches nothing.
package infra
