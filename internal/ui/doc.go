// Package ui hosts pickers in complete Bubble Tea programs.
//
// Two programs are provided:
//  1. [Single] : one full-screen picker; the program quits when it closes
//  2. [Model] : a form whose fields each own a picker
//
// The form is the reference owner of a picker. Every field keeps the [picker.Handle] it receives through
// [picker.WithRef] and opens its picker only through that handle. The committed value lives in the field and is
// pushed back into the picker from the value-changed callback. While a picker is open the form is drawn behind
// it with [picker.Model.Overlay], so the backdrop tint and slide animation play over the form itself.
//
// Frames are broadcast to every picker; each one ignores frames tagged with another picker's ID.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, s, q) with contextual help displayed via
// charmbracelet/bubbles/help.
package ui
