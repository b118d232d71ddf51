package main

import (
	"fmt"
	"os"

	"github.com/mdp/qrterminal/v3"
	"github.com/spf13/cobra"

	"github.com/qrforge/qrforge/internal/render"
	"github.com/qrforge/qrforge/qrecc"
	"github.com/qrforge/qrforge/qrsegment"
	"github.com/qrforge/qrforge/qrcode"
	"github.com/qrforge/qrforge/qrwriter"
)

var (
	flagOpen    bool
	flagCompare bool
)

var previewCmd = &cobra.Command{
	Use:   "preview <text>",
	Short: "Render a QR Code to the terminal, or open it in a browser",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().BoolVar(&flagOpen, "open", false, "open an SVG rendering in the default browser")
	previewCmd.Flags().BoolVar(&flagCompare, "compare", false, "also render via mdp/qrterminal for comparison")
}

func runPreview(cmd *cobra.Command, args []string) error {
	text := args[0]

	sym, err := qrcode.EncodeSegments(qrsegment.MakeSegments(text), cfg.Level,
		qrcode.WithMinVersion(cfg.MinVersion),
		qrcode.WithMaxVersion(cfg.MaxVersion),
		qrcode.WithBoostECL(cfg.BoostECL),
	)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if flagOpen {
		logger.Infow("opening in browser", "version", sym.Version())
		return qrwriter.OpenInBrowser(sym, cfg.Border)
	}

	if err := render.HalfBlock(os.Stdout, sym, cfg.Border); err != nil {
		return err
	}

	if flagCompare {
		fmt.Println("\n--- mdp/qrterminal reference rendering ---")
		render.ReferenceHalfBlock(os.Stdout, text, qrterminalLevel(cfg.Level))
	}

	return nil
}

func qrterminalLevel(l qrecc.Level) qrterminal.Level {
	switch l {
	case qrecc.Low:
		return qrterminal.L
	case qrecc.Medium:
		return qrterminal.M
	case qrecc.Quartile:
		return qrterminal.Q
	default:
		return qrterminal.H
	}
}
