package display

import (
	"fmt"
	"os"

	"github.com/backmassage/latstat/internal/term"
)

// PrintBanner prints the ASCII art banner; magenta if colors are enabled.
func PrintBanner() {
	banner := ` _          _   ____  _        _
| |    __ _| |_/ ___|| |_ __ _| |_
| |   / _` + "`" + ` | __\___ \| __/ _` + "`" + ` | __|
| |__| (_| | |_ ___) | || (_| | |_
|_____\__,_|\__|____/ \__|\__,_|\__|
`
	if term.Enabled() {
		term.Magenta.Fprint(os.Stdout, banner)
		return
	}
	fmt.Fprint(os.Stdout, banner)
}
