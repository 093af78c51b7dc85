package main

import (
	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"github.com/octu0/wavefront"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type config struct {
	Rows      int64  `toml:"rows"`
	Columns   int64  `toml:"columns"`
	Mode      string `toml:"mode"`
	Start     int64  `toml:"start"`
	ShowCount bool   `toml:"show_count"`
}

func defaultConfig() config {
	return config{
		Rows:    3,
		Columns: 3,
		Mode:    wavefront.ModeFull.String(),
		Start:   1,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, errors.Wrapf(err, "failed to decode %s", path)
	}
	if undecoded := md.Undecoded(); 0 < len(undecoded) {
		return config{}, errors.Errorf("%s: unknown keys %v", path, undecoded)
	}
	return cfg, nil
}

func addGridFlags(cmd *cobra.Command) {
	d := defaultConfig()
	cmd.Flags().String("config", "", "path to a TOML config file")
	cmd.Flags().Int64("rows", d.Rows, "number of rows")
	cmd.Flags().Int64("columns", d.Columns, "number of columns")
	cmd.Flags().Int64("start", d.Start, "value of the top-left cell")
	cmd.Flags().Bool("count", d.ShowCount, "print the element count of each slice")
}

// resolveConfig loads --config and lets explicitly set flags override it.
func resolveConfig(cmd *cobra.Command) (config, error) {
	flags := cmd.Flags()
	path, err := flags.GetString("config")
	if err != nil {
		return config{}, errors.WithStack(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return config{}, errors.WithStack(err)
	}

	int64Flags := map[string]*int64{
		"rows":    &cfg.Rows,
		"columns": &cfg.Columns,
		"start":   &cfg.Start,
	}
	for name, dst := range int64Flags {
		if flags.Changed(name) != true {
			continue
		}
		v, err := flags.GetInt64(name)
		if err != nil {
			return config{}, errors.WithStack(err)
		}
		*dst = v
	}
	if flags.Changed("count") {
		v, err := flags.GetBool("count")
		if err != nil {
			return config{}, errors.WithStack(err)
		}
		cfg.ShowCount = v
	}
	if flags.Lookup("mode") != nil && flags.Changed("mode") {
		v, err := flags.GetString("mode")
		if err != nil {
			return config{}, errors.WithStack(err)
		}
		cfg.Mode = v
	}
	return cfg, nil
}

func (c config) dims() (int, int, error) {
	rows, err := safecast.Conv[int](c.Rows)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "rows=%d", c.Rows)
	}
	cols, err := safecast.Conv[int](c.Columns)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "columns=%d", c.Columns)
	}
	return rows, cols, nil
}

func (c config) grid() (*wavefront.Matrix[int64], error) {
	rows, cols, err := c.dims()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	m, err := wavefront.Sequential(rows, cols, c.Start)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return m, nil
}
