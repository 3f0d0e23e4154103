package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

var (
	// Check if output supports colors
	supportsColor = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	// Color functions
	ColorSuccess = colorFunc(ansi.Green)
	ColorError   = colorFunc(ansi.Red)
	ColorWarning = colorFunc(ansi.Yellow)
	ColorInfo    = colorFunc(ansi.Cyan)
	ColorBold    = colorFunc("default+b")
	ColorDim     = colorFunc("default+h")
)

// colorFunc returns a function that colors text if supported
func colorFunc(color string) func(string) string {
	return func(text string) string {
		if supportsColor {
			return ansi.Color(text, color)
		}
		return text
	}
}

// ShowHeader displays a formatted header
func ShowHeader(title string) {
	width := 50
	padding := (width - len(title) - 2) / 2
	if padding < 0 {
		padding = 0
	}

	fmt.Println("\n+" + strings.Repeat("-", width-2) + "+")
	fmt.Printf("|%s%s%s|\n",
		strings.Repeat(" ", padding),
		ColorBold(title),
		strings.Repeat(" ", width-2-padding-len(title)),
	)
	fmt.Println("+" + strings.Repeat("-", width-2) + "+")
}

// ShowError displays a formatted error message
func ShowError(err error) {
	fmt.Printf("\n%s\n", ColorError("ERROR:"))

	for i, line := range strings.Split(err.Error(), "\n") {
		if i == 0 {
			fmt.Printf("  %s\n", line)
		} else {
			fmt.Printf("  %s\n", ColorDim(line))
		}
	}
}

// ShowSuccess displays a success message
func ShowSuccess(message string) {
	fmt.Printf("%s %s\n", ColorSuccess("SUCCESS:"), message)
}

// ShowStep displays a numbered pipeline step
func ShowStep(number int, message string) {
	fmt.Printf("%s %s\n", ColorInfo(fmt.Sprintf("[%d]", number)), message)
}
