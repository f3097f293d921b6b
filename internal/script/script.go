// Package script holds the minimal host object model that hooks borrow
// references into: script-level values, callables, call frames, and events.
// The interpreter and event engine that produce these live outside the
// extension core; this package only defines the shapes that cross the
// hook boundary.
package script

import (
	"fmt"
	"strings"
)

// Val is a script-level value. The extension core never interprets Data;
// it only passes values through hooks by borrowed reference.
type Val struct {
	Type string // script-level type name, e.g. "string", "count"
	Data any
}

// String renders the value for diagnostics.
func (v *Val) String() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", v.Data)
}

// StringVal is a convenience constructor for string values.
func StringVal(s string) *Val {
	return &Val{Type: "string", Data: s}
}

// CountVal is a convenience constructor for unsigned count values.
func CountVal(n uint64) *Val {
	return &Val{Type: "count", Data: n}
}

// ValList is an ordered list of script values, as passed to a callable.
type ValList []*Val

// String renders the list for diagnostics.
func (vl ValList) String() string {
	parts := make([]string, len(vl))
	for i, v := range vl {
		parts[i] = v.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Func identifies a script-level callable (function, event handler, or hook).
type Func struct {
	Name string // fully qualified script-level name
}

// Frame is the call frame a function executes in. Opaque to the extension
// core; carried so hooks can inspect the call site.
type Frame struct {
	Call  *Func
	Depth int
}

// Event is a raised script-level event waiting to be queued or drained.
type Event struct {
	Name string
	Args ValList
}

// FuncResult is the outcome of intercepting a function call. Handled
// distinguishes "no plugin was interested" from "a plugin handled the call
// and intentionally produced no value".
type FuncResult struct {
	Handled bool
	Val     *Val
}
