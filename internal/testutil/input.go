package testutil

import (
	"io"
	"strings"
)

// Input returns a reader that yields each line followed by a newline,
// as if typed at the console.
func Input(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
