// Package models defines the value types shared by the pickx packages.
//
// The package contains two categories of types:
//
// 1. Descriptors: plain data describing the environment a picker renders into
//   - [Device] : platform and screen geometry used for safe-area adaptation
//
// 2. Lifecycle values: what a picker reports back to its owner
//   - [Visibility] : Hidden, Showing, Interactive or Dismissing
//   - [Outcome] : how the last session ended (confirmed or canceled)
//   - [Selection] : the label and index committed by a confirm
//
// None of these types carry behaviour beyond formatting; the state machine lives in
// package picker and the reconciliation rules in package selection.
package models
