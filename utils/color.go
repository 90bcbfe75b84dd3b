package utils

import (
	"fmt"
	"os"
)

const (
	ColorDarkGray = 90
)

// Colorize wraps s in an ANSI color unless disabled or NO_COLOR is set.
func Colorize(s interface{}, c int, enabled bool) string {
	if !enabled || os.Getenv("NO_COLOR") != "" || c == 0 {
		return fmt.Sprintf("%v", s)
	}

	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}
