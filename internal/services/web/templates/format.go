package templates

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCount renders n with thousands separators, such as 28,756,489.
func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}
