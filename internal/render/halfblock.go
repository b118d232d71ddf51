// Package render draws a finished qrcode.Symbol to a terminal using Unicode
// half-block characters, and bridges to mdp/qrterminal for a second,
// independently-encoded rendering of the same text, for side-by-side
// comparison against the core encoder's own output.
package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mdp/qrterminal/v3"

	"github.com/qrforge/qrforge/qrcode"
)

// HalfBlock writes sym to w using Unicode half-block characters (▀▄█ and
// space), combining two module rows into one terminal row. border is the
// quiet-zone width in modules on every side.
func HalfBlock(w io.Writer, sym *qrcode.Symbol, border int) error {
	if border < 0 {
		return fmt.Errorf("render: border must be non-negative")
	}

	dim := sym.Size() + border*2
	at := func(x, y int) bool {
		return sym.GetModule(x-border, y-border)
	}

	for y := 0; y < dim; y += 2 {
		for x := 0; x < dim; x++ {
			top := at(x, y)
			bottom := y+1 < dim && at(x, y+1)
			switch {
			case top && bottom:
				fmt.Fprint(w, "█")
			case top && !bottom:
				fmt.Fprint(w, "▀")
			case !top && bottom:
				fmt.Fprint(w, "▄")
			default:
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprint(w, "\n")
	}
	return nil
}

// HalfBlockString is a convenience wrapper around HalfBlock that returns
// the rendered rows as a string.
func HalfBlockString(sym *qrcode.Symbol, border int) (string, error) {
	var buf bytes.Buffer
	if err := HalfBlock(&buf, sym, border); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ReferenceHalfBlock renders text via qrterminal's own encoder at the
// given error-correction strength, independently of this module's
// qrcode package. Useful as a cross-check that two unrelated encoders
// agree on what a scanner should see.
func ReferenceHalfBlock(w io.Writer, text string, level qrterminal.Level) {
	qrterminal.GenerateHalfBlock(text, level, w)
}
