package common

import "fmt"

// Preview returns two character cell painted with 24-bit background color
// for terminals supporting it.
func Preview(r, g, b uint8) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", r, g, b)
}
