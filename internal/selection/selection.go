// package selection reconciles the value a picker's owner has committed with the transient value the user is
// hovering while the picker is open.
//
// Everything here is a pure function of its arguments; the picker controller owns the state.
package selection

import "fmt"

// Choice is an optional item index.
//
// The zero value is [Unset]. A transient Choice is Unset until the user moves the spinner, and a committed
// Choice is Unset when the owner has no value yet.
type Choice struct {
	index int
	set   bool
}

// Unset returns the empty Choice.
func Unset() Choice { return Choice{} }

// Selected returns a Choice holding index i.
func Selected(i int) Choice { return Choice{index: i, set: true} }

// FromPointer converts an optional index, as decoded from config files, into a Choice.
func FromPointer(i *int) Choice {
	if i == nil {
		return Unset()
	}
	return Selected(*i)
}

// Index returns the held index and whether one is set.
func (c Choice) Index() (int, bool) { return c.index, c.set }

// IsSet reports whether the Choice holds an index.
func (c Choice) IsSet() bool { return c.set }

// Is reports whether the Choice holds exactly index i.
func (c Choice) Is(i int) bool { return c.set && c.index == i }

func (c Choice) String() string {
	if !c.set {
		return "unset"
	}
	return fmt.Sprintf("selected(%d)", c.index)
}

// InRange reports whether the Choice is set and addresses one of n items.
func (c Choice) InRange(n int) bool {
	return c.set && c.index >= 0 && c.index < n
}

// Normalize drops a committed value that does not address one of n items.
func Normalize(committed Choice, n int) Choice {
	if !committed.InRange(n) {
		return Unset()
	}
	return committed
}

// Displayed returns the index the spinner should highlight: the transient value when the user has moved the
// spinner, otherwise the committed value when it is in range, otherwise 0.
func Displayed(committed, transient Choice, n int) int {
	if transient.InRange(n) {
		return transient.index
	}
	if committed.InRange(n) {
		return committed.index
	}
	return 0
}

// ConfirmActive reports whether confirm would commit anything.
//
// It is active when the user has not touched the spinner, or when the transient value differs from the
// committed one. A confirm without interaction is therefore always allowed, even when index 0 is already the
// committed value. An empty list never has an active confirm.
func ConfirmActive(committed, transient Choice, n int) bool {
	if n == 0 {
		return false
	}
	return !transient.IsSet() || transient != Normalize(committed, n)
}

// Effective returns the label and index confirm would commit right now: the transient value, or index 0 when
// it is unset. ok is false when that index does not address an item.
func Effective(items []string, transient Choice) (label string, index int, ok bool) {
	index = 0
	if transient.IsSet() {
		index = transient.index
	}
	if index < 0 || index >= len(items) {
		return "", index, false
	}
	return items[index], index, true
}
