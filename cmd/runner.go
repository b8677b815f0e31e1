package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/pickx/internal/models"
	"github.com/desertthunder/pickx/internal/safearea"
	"github.com/desertthunder/pickx/internal/shared"
	"github.com/urfave/cli/v3"
)

// ProgramRunner runs a Bubble Tea model to completion and returns its final state.
type ProgramRunner func(tea.Model) (tea.Model, error)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	logger     *log.Logger
	output     io.Writer
	run        ProgramRunner
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Output     io.Writer
	Run        ProgramRunner
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Run == nil {
		opts.Run = runProgram
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		output:     opts.Output,
		run:        opts.Run,
	}
}

// runProgram draws on stderr so that stdout only carries the result, which keeps `$(pickx pick ...)` usable.
func runProgram(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(os.Stderr)).Run()
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		pickCommand, formCommand, devicesCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger replaces the logger used by subsequent commands.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// loadConfig replaces the default config with the file named by --config.
//
// A missing file is only an error when the flag was given explicitly.
func (r *Runner) loadConfig(cmd *cli.Command) error {
	path := cmd.String("config")
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); err != nil {
		if cmd.IsSet("config") {
			return fmt.Errorf("%w: %s", shared.ErrMissingConfig, path)
		}
		r.logger.Debug("config file not found, using defaults", "path", path)
		return nil
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		return err
	}
	r.config = config
	r.configPath = path

	return shared.SetLogLevelString(r.logger, config.Log.Level)
}

// useFileLogger switches logging to the configured log file for the length of a TUI session. The returned func
// restores the previous logger and closes the file.
func (r *Runner) useFileLogger() (func(), error) {
	previous := r.logger
	if r.config.Log.File == "" {
		r.SetLogger(shared.DiscardLogger())
		return func() { r.SetLogger(previous) }, nil
	}

	fileLogger, closer, err := shared.NewFileLogger(r.config.Log.File)
	if err != nil {
		return nil, fmt.Errorf("failed to create file logger: %w", err)
	}
	if err := shared.SetLogLevelString(fileLogger, r.config.Log.Level); err != nil {
		closer.Close()
		return nil, err
	}

	r.SetLogger(fileLogger)
	return func() {
		r.SetLogger(previous)
		closer.Close()
	}, nil
}

// resolveDevice picks the device from the --device flag, then the [device] config section, then the default.
func (r *Runner) resolveDevice(name string) (models.Device, error) {
	if name != "" {
		return safearea.Lookup(name)
	}

	dc := r.config.Device
	if dc.Platform != "" {
		return models.Device{
			Name:     "custom",
			Platform: models.Platform(dc.Platform),
			Width:    dc.Width,
			Height:   dc.Height,
			IsPad:    dc.IsPad,
			IsTV:     dc.IsTV,
		}, nil
	}
	if dc.Profile != "" {
		return safearea.Lookup(dc.Profile)
	}
	return safearea.Default(), nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
