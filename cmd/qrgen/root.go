package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/qrforge/qrforge/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "qrgen",
	Short: "Generate QR Code Model 2 symbols",
}

var (
	cfg    config.Config
	logger *zap.SugaredLogger

	flagVerbose bool
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initConfig, initLogger)
}

func initConfig() {
	loaded, err := config.Load(viper.GetViper())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg = loaded
}

func initLogger() {
	var zc zap.Config
	if flagVerbose {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	z, err := zc.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger = z.Sugar()
}
