package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/octu0/wavefront"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var labelColor = color.New(color.FgCyan, color.Bold)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		f, ok := cmd.OutOrStdout().(*os.File)
		return ok && isTerminal(f), nil
	}
	return false, errors.Errorf("unknown color mode: %s", mode)
}

func formatOptions(cmd *cobra.Command, cfg config) ([]wavefront.FormatOption, error) {
	opts := make([]wavefront.FormatOption, 0, 2)
	if cfg.ShowCount {
		opts = append(opts, wavefront.WithCount())
	}
	colored, err := useColor(cmd)
	if err != nil {
		return nil, err
	}
	if colored {
		labelColor.EnableColor()
		opts = append(opts, wavefront.WithLabel(labelColor.SprintFunc()))
	}
	return opts, nil
}
