package cli

import (
	"fmt"
	"os"
)

const (
	ResetCode = "\033[0m"
	DimCode   = "\033[2m"
	Bold      = "\033[1m"
	Red       = "\033[31m"
	Green     = "\033[32m"
	Yellow    = "\033[33m"
	Blue      = "\033[34m"
	Purple    = "\033[35m"
	Cyan      = "\033[36m"
)

// disableColor is a cached check for the environment variable
var disableColor = checkNoColor()

func checkNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}

// Enabled reports whether ANSI colouring is on.
func Enabled() bool {
	return !disableColor
}

// Style wraps text in a specific color code
func Style(text string, colorCode string) string {
	if disableColor {
		return text
	}
	return fmt.Sprintf("%s%s%s", colorCode, text, ResetCode)
}

func CheckMark() string {
	return Style("✔", Green)
}

func CrossMark() string {
	return Style("✘", Red)
}

func WarningSign() string {
	return Style("⚠", Yellow)
}

// SetEnabled overrides the NO_COLOR detection, e.g. for a --no-color flag.
func SetEnabled(on bool) {
	disableColor = !on
}
