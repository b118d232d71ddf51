// Package qrwriter is the thin, external-collaborator layer that turns a
// finished qrcode.Symbol into bytes on disk, or pushes it straight into
// the user's default browser. It performs no encoding of its own: every
// function here is a few lines of glue around qrcode.Symbol.ToSVGString.
package qrwriter

import (
	"fmt"
	"os"

	"github.com/pkg/browser"

	"github.com/qrforge/qrforge/qrcode"
)

// WriteSVGFile renders sym as an SVG document and writes it to path,
// creating or truncating the file as needed.
func WriteSVGFile(sym *qrcode.Symbol, path string, border int) error {
	svg, err := sym.ToSVGString(border, true)
	if err != nil {
		return fmt.Errorf("qrwriter: %w", err)
	}
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("qrwriter: writing %s: %w", path, err)
	}
	return nil
}

// OpenInBrowser renders sym as an SVG document into a temporary file and
// opens it with the user's default browser via pkg/browser.
func OpenInBrowser(sym *qrcode.Symbol, border int) error {
	f, err := os.CreateTemp("", "qrforge-*.svg")
	if err != nil {
		return fmt.Errorf("qrwriter: %w", err)
	}
	defer f.Close()

	svg, err := sym.ToSVGString(border, true)
	if err != nil {
		return fmt.Errorf("qrwriter: %w", err)
	}
	if _, err := f.WriteString(svg); err != nil {
		return fmt.Errorf("qrwriter: writing %s: %w", f.Name(), err)
	}

	if err := browser.OpenFile(f.Name()); err != nil {
		return fmt.Errorf("qrwriter: opening browser: %w", err)
	}
	return nil
}
