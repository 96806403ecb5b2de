package mime

import (
	"regexp"
	"strings"
)

// whitespace is every character ECMAScript considers white space or a line terminator,
// which is wider than the ASCII-only \s.
const whitespace = `[\s\v\p{Z}\x{FEFF}]`

// typePattern matches a leading type/subtype token, followed by either parameters, a
// whitespace or the end of the string. Both parts are capped at 127 characters.
var typePattern = regexp.MustCompile(
	`^` + whitespace + `*([A-Za-z0-9][A-Za-z0-9!#$&^_-]{0,126}/[A-Za-z0-9][A-Za-z0-9!#$&^_.+-]{0,126})(?:;|` + whitespace + `|$)`,
)

// Extract returns the lowercased type/subtype of a Content-Type-like value, dropping
// the parameters if any.
func Extract(str string) (MIME, bool) {
	match := typePattern.FindStringSubmatch(strings.ToLower(str))
	if match == nil {
		return "", false
	}

	return match[1], true
}
