package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/pickx/internal/picker"
	"github.com/desertthunder/pickx/internal/selection"
)

var (
	_ list.Item = fieldItem{}
)

// field is one picker-backed form field. It owns the committed value; the picker only mirrors it.
type field struct {
	name   string
	title  string
	items  []string
	value  selection.Choice
	picker *picker.Model
	handle picker.Handle
}

// label returns the committed label, or "" when the field has no valid value.
func (f *field) label() string {
	if i, ok := f.value.Index(); ok && f.value.InRange(len(f.items)) {
		return f.items[i]
	}
	return ""
}

// fieldItem wraps a [field] to implement [list.Item].
type fieldItem struct {
	field *field
}

func (i fieldItem) FilterValue() string { return i.field.title }
func (i fieldItem) Title() string       { return i.field.title }
func (i fieldItem) Description() string {
	if label := i.field.label(); label != "" {
		return label
	}
	return fmt.Sprintf("not set • %d options", len(i.field.items))
}
