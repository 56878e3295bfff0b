package stringtest

import "strings"

// Lines joins ss with LF line endings and appends a trailing LF.
// Use this to construct expected document output, which always ends with a
// newline.
//
// Example:
//
//	want := stringtest.Lines(
//		"name: John Doe",
//		"age: 30",
//	) // -> "name: John Doe\nage: 30\n"
func Lines(ss ...string) string {
	var sb strings.Builder
	for _, s := range ss {
		sb.WriteString(s)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// JoinLF joins ss with LF line endings and no trailing newline.
// Use this to construct multi-line values with explicit line endings, such
// as comment text.
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}
