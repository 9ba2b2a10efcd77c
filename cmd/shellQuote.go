package cmd

import "strings"

// shellSpecial lists the characters that force quoting: whitespace, quote and
// escape characters, expansion and glob metacharacters, grouping, redirection
// and control operators.
const shellSpecial = " \t\r\n\"'\\$`*?[]()<>|&;"

// shellQuote quotes an argument for POSIX shells. Arguments containing none
// of the shell-significant characters pass through unchanged; everything else
// is single-quoted, with embedded single quotes escaped via the
// close-quote/escaped-quote/reopen idiom so the shell reads back the exact
// original string.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, shellSpecial) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
