package main

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/desertthunder/pickx/internal/shared"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes the example configuration file.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	r.logger.Info("config file created", "path", path)
	return r.writePlain("created %s\n", path)
}

// ConfigShow prints the effective configuration as TOML.
func (r *Runner) ConfigShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.loadConfig(cmd); err != nil {
		return err
	}
	if err := toml.NewEncoder(r.output).Encode(r.config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
