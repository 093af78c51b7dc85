package main

import (
	"github.com/octu0/wavefront"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep [flags]",
		Short: "Print the diagonals of a sequential grid",
		Long:  `Sweep fills a rows x columns grid with sequential values and prints one "Slice" line per diagonal`,
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	addGridFlags(cmd)
	cmd.Flags().String("mode", wavefront.ModeFull.String(), "sweep mode (full|upper|upper-strict)")
	return cmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	mode, err := wavefront.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	m, err := cfg.grid()
	if err != nil {
		return err
	}
	logger.Printf("sweep rows=%d columns=%d mode=%s start=%d", cfg.Rows, cfg.Columns, mode, cfg.Start)

	seq, err := wavefront.Sweep(m, mode)
	if err != nil {
		return err
	}
	opts, err := formatOptions(cmd, cfg)
	if err != nil {
		return err
	}
	if err := wavefront.WriteDiagonals(cmd.OutOrStdout(), seq, opts...); err != nil {
		return errors.Wrap(err, "sweep output")
	}
	return nil
}
