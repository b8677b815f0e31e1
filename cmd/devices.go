package main

import (
	"context"

	"github.com/desertthunder/pickx/internal/models"
	"github.com/desertthunder/pickx/internal/safearea"
	"github.com/urfave/cli/v3"
)

// deviceRow is one line of `pickx devices`.
type deviceRow struct {
	models.Device
	Inset int `json:"inset"`
	Rows  int `json:"rows"`
}

// Devices lists the built-in device profiles with the bottom inset each one gets.
func (r *Runner) Devices(ctx context.Context, cmd *cli.Command) error {
	profiles := safearea.Profiles()
	rows := make([]deviceRow, len(profiles))
	for i, d := range profiles {
		inset := safearea.ExtraBottomInset(d)
		rows[i] = deviceRow{Device: d, Inset: inset, Rows: safearea.Rows(inset)}
	}

	if cmd.Bool("json") {
		return r.writeJSON(rows, cmd.Bool("pretty"))
	}

	if err := r.writePlain("%-20s %-10s %-11s %-6s %s\n", "NAME", "PLATFORM", "SIZE", "KIND", "INSET"); err != nil {
		return err
	}
	for _, row := range rows {
		kind := "phone"
		switch {
		case row.IsTV:
			kind = "tv"
		case row.IsPad:
			kind = "pad"
		case row.Platform == models.PlatformTerminal:
			kind = "-"
		}
		if err := r.writePlain("%-20s %-10s %4dx%-6d %-6s %dpt\n",
			row.Name, row.Platform, row.Width, row.Height, kind, row.Inset); err != nil {
			return err
		}
	}
	return nil
}
