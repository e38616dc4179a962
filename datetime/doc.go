// Package datetime parses the date and time microsyntaxes from the WHATWG
// HTML Standard (https://html.spec.whatwg.org/multipage/common-microsyntaxes.html):
// years, months, dates, yearless dates, times, local and global date-times,
// time-zone offsets, and week dates.
//
// Each format has its own entry point (ParseDate, ParseTime, ...) returning
// a validated value type, and Parse auto-detects which format an input
// matches. The grammars are strict: a single disallowed character anywhere
// fails the whole parse, and no partial result is ever returned. Leading and
// trailing ASCII whitespace around a literal is tolerated and stripped at
// the boundary.
//
// All functions are pure and safe for concurrent use.
package datetime
