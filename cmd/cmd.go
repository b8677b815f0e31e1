// submodule cmd contains command definitions
package main

import (
	"github.com/desertthunder/pickx/internal/formatter"
	"github.com/urfave/cli/v3"
)

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format (plain, json, shell, csv)",
		Value:   string(formatter.FormatPlain),
	}
}

func deviceFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "device",
		Aliases: []string{"d"},
		Usage:   "Device profile to lay the picker out for (see `pickx devices`)",
	}
}

// pickCommand opens a single picker and prints the confirmed value
func pickCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "pick",
		Aliases:   []string{"p"},
		Usage:     "Pick one item and print it",
		ArgsUsage: "[item...]",
		Flags: []cli.Flag{
			configFlag(),
			formatFlag(),
			deviceFlag(),
			&cli.StringFlag{
				Name:    "items",
				Aliases: []string{"i"},
				Usage:   "Comma-separated items",
			},
			&cli.StringFlag{
				Name:  "file",
				Usage: "Read items from a .toml, .yaml or plain text file",
			},
			&cli.StringFlag{
				Name:    "title",
				Aliases: []string{"t"},
				Usage:   "Picker title",
			},
			&cli.IntFlag{
				Name:  "value",
				Usage: "Index of the currently committed item",
			},
		},
		Action: r.Pick,
	}
}

// formCommand runs the demo form host
func formCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "form",
		Usage: "Fill in a form whose fields are pickers",
		Flags: []cli.Flag{
			configFlag(),
			formatFlag(),
			deviceFlag(),
			&cli.StringFlag{
				Name:     "file",
				Usage:    "Form definition (.toml or .yaml)",
				Required: true,
			},
		},
		Action: r.Form,
	}
}

// devicesCommand lists the built-in device profiles
func devicesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "devices",
		Usage: "List device profiles and their safe-area inset",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Devices,
	}
}

// configCommand handles configuration files
func configCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Write the example configuration file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Where to write the file",
						Value: "config.toml",
					},
				},
				Action: r.ConfigInit,
			},
			{
				Name:  "show",
				Usage: "Print the effective configuration",
				Flags: []cli.Flag{
					configFlag(),
				},
				Action: r.ConfigShow,
			},
		},
	}
}
