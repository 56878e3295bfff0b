package comment

import "unicode"

// KeyData describes a mapping key recognized on a single line of YAML
// output.
//
// Text is a substring of the scanned line, so it is only valid as long as
// the line it was scanned from. Column is the zero-based byte offset at
// which the key name begins; comment lines injected for this key are
// indented by the same number of spaces.
type KeyData struct {
	// Text is the key name with surrounding structural syntax removed.
	Text string
	// Column is the byte offset of the first character of the key name.
	Column int
}

// ScanKey scans a single physical line and reports whether it opens a
// mapping key.
//
// The scan is a single left-to-right pass:
//
//   - Control characters are ignored entirely.
//   - A "#" seen before the key is fully bounded disqualifies the line;
//     a line that is itself a comment is never a key.
//   - Indentation, block-sequence markers ("-"), explicit-key markers
//     ("?"), and whitespace are skipped only until the key starts. Once
//     content begins, interior whitespace belongs to the key.
//   - A ":" ends the key. A line whose first content character is ":"
//     has no key.
//
// Lines with no colon, or with no content before the colon, yield no key.
// Quoted keys containing ":" or "#" are not understood and may produce a
// truncated Text; callers needing those must use a real parser instead.
func ScanKey(line string) (KeyData, bool) {
	start, end := -1, -1

	for i, c := range line {
		if unicode.IsControl(c) {
			continue
		}

		if c == '#' && (start < 0 || end < 0) {
			return KeyData{}, false
		}

		if (c == '-' || c == '?' || unicode.IsSpace(c)) && start < 0 {
			continue
		}

		if c == ':' {
			if start < 0 {
				return KeyData{}, false
			}

			// A later colon on the same line moves the boundary; the
			// last one wins.
			end = i
		}

		if start < 0 {
			start = i
		}
	}

	if start < 0 || end < 0 {
		return KeyData{}, false
	}

	return KeyData{Text: line[start:end], Column: start}, true
}
