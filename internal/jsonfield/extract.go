package jsonfield

import "strings"

// Extract locates the quoted key in doc and returns its scalar value. The
// first occurrence of the key wins. String values are scanned to the next
// quote without unescaping, so a value containing an escaped quote truncates
// early; this is a known limitation of the format, not handled here. Bare
// tokens (numbers, booleans, null) end at a comma, closing brace, or
// whitespace. The result carries at most maxLen-1 bytes; longer values are
// truncated silently.
//
// The second return value is false when the key is absent or the value cannot
// be delimited (no colon after the key, no closing quote).
func Extract(doc, key string, maxLen int) (string, bool) {
	if maxLen <= 0 {
		return "", false
	}

	needle := `"` + key + `"`
	keyPos := strings.Index(doc, needle)
	if keyPos < 0 {
		return "", false
	}

	rest := doc[keyPos+len(needle):]
	colon := strings.IndexByte(rest, ':')
	if colon < 0 {
		return "", false
	}

	value := rest[colon+1:]
	for len(value) > 0 && isSpace(value[0]) {
		value = value[1:]
	}

	if len(value) > 0 && value[0] == '"' {
		value = value[1:]
		end := strings.IndexByte(value, '"')
		if end < 0 {
			return "", false
		}
		return clip(value[:end], maxLen), true
	}

	end := 0
	for end < len(value) && !isBareTokenEnd(value[end]) {
		end++
	}
	return clip(value[:end], maxLen), true
}

// clip bounds the value to maxLen-1 bytes.
func clip(value string, maxLen int) string {
	if len(value) >= maxLen {
		return value[:maxLen-1]
	}
	return value
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isBareTokenEnd(c byte) bool {
	return c == ',' || c == '}' || isSpace(c)
}
