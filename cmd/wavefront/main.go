package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

const appName = "wavefront"

var logger = log.New(io.Discard, appName+": ", log.LstdFlags)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          appName,
		Short:        "Anti-diagonal sweeps of a rectangular grid",
		Long:         `wavefront prints the diagonals of a grid from the top-right corner to the bottom-left one`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
			if err != nil {
				return err
			}
			if _, err := useColor(cmd); err != nil {
				return err
			}
			if verbose {
				logger.SetOutput(cmd.ErrOrStderr())
			} else {
				logger.SetOutput(io.Discard)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("color", "auto", "colorize slice labels (auto|on|off)")
	rootCmd.PersistentFlags().Bool("verbose", false, "log diagnostics to stderr")

	rootCmd.AddCommand(newSweepCmd())
	rootCmd.AddCommand(newDemoCmd())
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
