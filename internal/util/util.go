package util

import (
	"fmt"
	"unicode/utf8"
)

const maxSnippet = 16

func ErrorMsg(pos int, message string) error {
	return errorMsgDetail(pos, "", message)
}

func ErrorAt(pos int, where string, message string) error {
	return errorMsgDetail(pos, " at '"+Snippet(where)+"'", message)
}

// Snippet shortens long input remainders for diagnostics. The cut never
// splits a rune.
func Snippet(s string) string {
	if len(s) <= maxSnippet {
		return s
	}
	cut := maxSnippet
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

func errorMsgDetail(pos int, where string, message string) error {
	return fmt.Errorf("[col %d] Error%s: %s", pos+1, where, message)
}
