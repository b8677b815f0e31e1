package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/pickx/internal/formatter"
	"github.com/desertthunder/pickx/internal/models"
	"github.com/desertthunder/pickx/internal/picker"
	"github.com/desertthunder/pickx/internal/selection"
	"github.com/desertthunder/pickx/internal/shared"
	"github.com/desertthunder/pickx/internal/ui"
	"github.com/urfave/cli/v3"
)

// Pick opens one picker and writes the confirmed selection. Closing the picker any other way returns
// [shared.ErrCanceled].
func (r *Runner) Pick(ctx context.Context, cmd *cli.Command) error {
	if err := r.loadConfig(cmd); err != nil {
		return err
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	list, err := r.itemList(cmd)
	if err != nil {
		return err
	}

	device, err := r.resolveDevice(cmd.String("device"))
	if err != nil {
		return err
	}

	value := selection.FromPointer(list.Value)
	if cmd.IsSet("value") {
		value = selection.Selected(int(cmd.Int("value")))
	}

	cfg := picker.ConfigFromSettings(list.Items, r.config.Picker)
	if list.Title != "" {
		cfg.Title = list.Title
	}
	if title := cmd.String("title"); title != "" {
		cfg.Title = title
	}

	restore, err := r.useFileLogger()
	if err != nil {
		return err
	}
	defer restore()

	r.logger.Info("opening picker", "items", len(cfg.Items), "device", device.Name, "value", value)
	p := picker.New(cfg,
		picker.WithValue(value),
		picker.WithDevice(device),
		picker.WithLogger(r.logger),
		picker.WithFrameRate(r.config.Picker.FrameRate),
	)

	final, err := r.run(ui.NewSingle(p))
	if err != nil {
		return fmt.Errorf("error running picker: %w", err)
	}

	single, ok := final.(*ui.Single)
	if !ok {
		return fmt.Errorf("unexpected model %T", final)
	}

	sel, outcome := single.Result()
	r.logger.Info("picker closed", "outcome", outcome, "selection", sel)
	if outcome != models.OutcomeConfirmed {
		return shared.ErrCanceled
	}
	return formatter.Selection(r.output, format, sel)
}

// itemList collects items from --file, --items and positional arguments, in that order.
func (r *Runner) itemList(cmd *cli.Command) (*shared.ItemList, error) {
	list := &shared.ItemList{}
	if path := cmd.String("file"); path != "" {
		loaded, err := shared.LoadItems(path)
		if err != nil {
			return nil, err
		}
		list = loaded
	}

	list.Items = append(list.Items, shared.SplitItems(cmd.String("items"))...)
	list.Items = append(list.Items, cmd.Args().Slice()...)

	if len(list.Items) == 0 {
		return nil, fmt.Errorf("%w: use --items, --file or pass items as arguments", shared.ErrNoItems)
	}
	if err := shared.ValidateItems(list.Items); err != nil {
		return nil, err
	}
	return list, nil
}

// Form runs the form host and writes the value of every field once the form is submitted.
func (r *Runner) Form(ctx context.Context, cmd *cli.Command) error {
	if err := r.loadConfig(cmd); err != nil {
		return err
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	form, err := shared.LoadForm(cmd.String("file"))
	if err != nil {
		return err
	}

	device, err := r.resolveDevice(cmd.String("device"))
	if err != nil {
		return err
	}

	restore, err := r.useFileLogger()
	if err != nil {
		return err
	}
	defer restore()

	base := picker.ConfigFromSettings(nil, r.config.Picker)
	model := ui.NewModel(form, base, r.logger,
		picker.WithDevice(device),
		picker.WithLogger(r.logger),
		picker.WithFrameRate(r.config.Picker.FrameRate),
	)

	final, err := r.run(model)
	if err != nil {
		return fmt.Errorf("error running form: %w", err)
	}

	host, ok := final.(*ui.Model)
	if !ok {
		return fmt.Errorf("unexpected model %T", final)
	}
	if !host.Submitted() {
		return shared.ErrCanceled
	}

	values := host.Values()
	entries := make([]formatter.Entry, len(values))
	for i, v := range values {
		index, set := v.Value.Index()
		entries[i] = formatter.Entry{
			Name:      v.Name,
			Set:       set && v.Label != "",
			Selection: models.Selection{Label: v.Label, Index: index},
		}
	}
	return formatter.Entries(r.output, format, entries)
}
