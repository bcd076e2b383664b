package view

import (
	"errors"
	"fmt"
	"io"

	"fjacquet/finance-tracker/internal/ledgererror"

	"github.com/fatih/color"
)

// WarningTitle prefixes every input warning.
const WarningTitle = "Invalid Input"

var warningColor = color.New(color.FgYellow, color.Bold)

// WarningMessage returns the text shown for err: the user message of a
// validation error, or the error text otherwise.
func WarningMessage(err error) string {
	var ve *ledgererror.ValidationError
	if errors.As(err, &ve) {
		return fmt.Sprintf("%s: %s", WarningTitle, ve.UserMessage())
	}
	return fmt.Sprintf("%s: %v", WarningTitle, err)
}

// PrintWarning writes the coloured warning for err on its own line.
func PrintWarning(w io.Writer, err error) {
	warningColor.Fprintln(w, WarningMessage(err))
}
