package core

import "strings"

// ExtractNewestVersion pulls the crate.newest_version string out of a raw
// crates.io API response without a JSON parser.
//
// The scan anchors on the literal `"crate"` key so that a newest_version-like
// key appearing earlier in the payload (the versions array, say) cannot be
// picked up, then looks for `"newest_version"`, the colon, optional
// whitespace, and a quoted value. The value is taken verbatim up to the next
// quote with no escape decoding; registry version strings never contain
// escapes. Tolerates compact, spaced, and pretty-printed bodies alike.
func ExtractNewestVersion(body string) (string, error) {
	crateStart := strings.Index(body, `"crate"`)
	if crateStart < 0 {
		return "", &ParseError{Msg: "'crate' field not found in response"}
	}
	region := body[crateStart:]

	const versionKey = `"newest_version"`
	keyPos := strings.Index(region, versionKey)
	if keyPos < 0 {
		return "", &ParseError{Msg: "'newest_version' field not found in response"}
	}
	afterKey := region[keyPos+len(versionKey):]

	colonPos := strings.IndexByte(afterKey, ':')
	if colonPos < 0 {
		return "", &ParseError{Msg: "malformed JSON: missing colon after newest_version"}
	}
	afterColon := strings.TrimLeft(afterKey[colonPos+1:], " \t\r\n")

	if !strings.HasPrefix(afterColon, `"`) {
		return "", &ParseError{Msg: "malformed JSON: expected quote after newest_version colon"}
	}
	value := afterColon[1:]

	quoteEnd := strings.IndexByte(value, '"')
	if quoteEnd < 0 {
		return "", &ParseError{Msg: "malformed JSON: unclosed version string"}
	}
	return value[:quoteEnd], nil
}
