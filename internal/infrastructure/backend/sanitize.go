package backend

import "regexp"

// On Windows the backend emits drive-letter paths inside its JSON without
// escaping the backslashes, which makes the document undecodable. The
// pattern matches a quoted string that starts with a drive-letter prefix;
// the body may contain already-escaped sequences, stray single backslashes,
// or plain characters.
var drivePathPattern = regexp.MustCompile(`"[A-Za-z]:\\(?:\\|[^"])*"`)

// sanitizePaths escapes lone backslashes inside drive-letter-prefixed path
// strings so the payload decodes as JSON. Non-path fields are left
// untouched. Best-effort: a payload that still fails to decode afterwards
// is surfaced as malformed output by the caller.
func sanitizePaths(raw []byte) []byte {
	return drivePathPattern.ReplaceAllFunc(raw, escapeBackslashes)
}

func escapeBackslashes(match []byte) []byte {
	out := make([]byte, 0, len(match)*2)
	for i := 0; i < len(match); i++ {
		if match[i] != '\\' {
			out = append(out, match[i])
			continue
		}
		// keep sequences that are already escaped
		if i+1 < len(match) && match[i+1] == '\\' {
			out = append(out, '\\', '\\')
			i++
			continue
		}
		out = append(out, '\\', '\\')
	}
	return out
}
