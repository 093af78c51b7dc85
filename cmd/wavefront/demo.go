package main

import (
	"io"

	"github.com/octu0/wavefront"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo [flags]",
		Short: "Print a grid and all of its sweeps",
		Args:  cobra.NoArgs,
		RunE:  runDemo,
	}
	addGridFlags(cmd)
	return cmd
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	m, err := cfg.grid()
	if err != nil {
		return err
	}
	opts, err := formatOptions(cmd, cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if err := wavefront.WriteMatrix(out, m); err != nil {
		return err
	}
	full, err := wavefront.FullSweep(m)
	if err != nil {
		return err
	}
	if err := wavefront.WriteDiagonals(out, full, opts...); err != nil {
		return err
	}

	sections := []struct {
		header         string
		excludePrimary bool
	}{
		{"Now only the superior triangular matrix, with primary diagonal.", false},
		{"And now the same but without the primary diagonal.", true},
	}
	for _, s := range sections {
		seq, err := wavefront.UpperTriangularSweep(m, s.excludePrimary)
		if errors.Is(err, wavefront.ErrNotSquare) {
			logger.Printf("skip triangular sweeps: %v", err)
			return nil
		}
		if err != nil {
			return err
		}
		if _, err := io.WriteString(out, s.header+"\n"); err != nil {
			return err
		}
		if err := wavefront.WriteDiagonals(out, seq, opts...); err != nil {
			return err
		}
	}
	return nil
}
