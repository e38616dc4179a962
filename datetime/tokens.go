package datetime

// Literal separator and marker characters of the microsyntax grammars. All
// grammars are pure ASCII, so separators are matched as single bytes.
const (
	tokenHyphen = '-'
	tokenColon  = ':'
	tokenT      = 'T'
	tokenZ      = 'Z'
	tokenPlus   = '+'
	tokenMinus  = '-'
	tokenDot    = '.'
	tokenSpace  = ' '
	tokenWeek   = 'W'
)
