// Package picker implements a modal, animated, single-column value picker as a Bubble Tea component.
//
// A [Model] moves through four visibility states:
//  1. [models.Hidden] : nothing is drawn; keys are ignored
//  2. [models.Showing] : the sheet slides in and the backdrop darkens
//  3. [models.Interactive] : the open animation has settled
//  4. [models.Dismissing] : the sheet slides out after a confirm or cancel
//
// The owner opens the picker through the [Handle] handed to the [WithRef] callback. While the picker is open the
// user moves a transient selection with the spinner keys (or by typing part of a label) and then confirms or
// cancels. A confirm reports the effective value through the value-changed callback, then the dismiss callback,
// then starts the close animation. A cancel starts the close animation and runs the cancel callback once it
// settles. Either way a [ClosedMsg] is emitted when the picker is hidden again.
//
// The committed value is owned by the caller: the picker never changes it on its own. Owners that want the
// picker to reflect a confirmed value call [Model.SetValue] from their value-changed callback.
//
// Drawing is a pure projection ([Render]) of a [Snapshot] taken after every state change, so the view never
// mutates the model.
package picker
