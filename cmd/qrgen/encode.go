package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qrforge/qrforge/qrcode"
	"github.com/qrforge/qrforge/qrsegment"
	"github.com/qrforge/qrforge/qrwriter"
)

var (
	flagOut  string
	flagMask int
)

var encodeCmd = &cobra.Command{
	Use:   "encode <text>",
	Short: "Encode text as a QR Code and write it to an SVG file",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringVar(&flagOut, "out", "qrcode.svg", "output SVG file path")
	encodeCmd.Flags().IntVar(&flagMask, "mask", -1, "force mask pattern 0-7 (default: automatic)")
}

func runEncode(cmd *cobra.Command, args []string) error {
	text := args[0]

	opts := []qrcode.Option{
		qrcode.WithMinVersion(cfg.MinVersion),
		qrcode.WithMaxVersion(cfg.MaxVersion),
		qrcode.WithBoostECL(cfg.BoostECL),
	}
	if flagMask >= 0 {
		opts = append(opts, qrcode.WithMask(flagMask))
	}

	sym, err := qrcode.EncodeSegments(qrsegment.MakeSegments(text), cfg.Level, opts...)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if err := qrwriter.WriteSVGFile(sym, flagOut, cfg.Border); err != nil {
		return err
	}

	logger.Infow("wrote symbol",
		"path", flagOut,
		"version", sym.Version(),
		"level", sym.ErrorCorrectionLevel().String(),
		"mask", sym.Mask(),
	)
	fmt.Printf("wrote %s (version %d, level %s, mask %d)\n", flagOut, sym.Version(), sym.ErrorCorrectionLevel(), sym.Mask())
	return nil
}
