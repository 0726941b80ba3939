// Package ansi provides ANSI escape code constants and helpers for terminal output.
// All colored/styled terminal output should reference these constants to avoid duplication.
package ansi

import (
	"fmt"
	"strconv"
	"strings"
)

// ANSI SGR (Select Graphic Rendition) codes.
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Blue    = "\033[34m"
	Yellow  = "\033[33m"
	Green   = "\033[32m"
	Red     = "\033[31m"
	Cyan    = "\033[36m"
	Magenta = "\033[35m"
)

// TrueColorFmt is a format string for a 24-bit foreground color.
const TrueColorFmt = "\033[38;2;%d;%d;%dm"

// Hex returns a 24-bit foreground escape for a "#RRGGBB" color.
// Malformed input yields an empty string so callers fall back to the
// terminal's default color.
func Hex(color string) string {
	s := strings.TrimPrefix(color, "#")
	if len(s) != 6 {
		return ""
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return ""
	}
	return fmt.Sprintf(TrueColorFmt, v>>16&0xFF, v>>8&0xFF, v&0xFF)
}
