package hook

import (
	"fmt"
	"io"

	"github.com/varkis/hookline/internal/script"
)

// Kind tags the payload held by an Argument.
type Kind int

// Argument kinds.
const (
	KindVoid Kind = iota
	KindBool
	KindDouble
	KindInt
	KindString
	KindPointer
	KindEvent
	KindFunc
	KindFrame
	KindVal
	KindValList
	KindFuncResult
)

var kindNames = map[Kind]string{
	KindVoid:       "void",
	KindBool:       "bool",
	KindDouble:     "double",
	KindInt:        "int",
	KindString:     "string",
	KindPointer:    "pointer",
	KindEvent:      "event",
	KindFunc:       "func",
	KindFrame:      "frame",
	KindVal:        "val",
	KindValList:    "val_list",
	KindFuncResult: "func_result",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Argument is a tagged cell carrying one hook argument or result through
// the generic dispatch path. Payload references into host objects are
// borrowed; a cell is only valid for the duration of a single dispatch.
//
// Accessing the payload through an accessor whose kind does not match the
// cell's tag is a programming error and panics. There is no coercion.
type Argument struct {
	kind Kind

	b  bool
	d  float64
	i  int
	s  string
	p  any
	ev *script.Event
	fn *script.Func
	frm *script.Frame
	v  *script.Val
	vl script.ValList
	res script.FuncResult
}

// VoidArg returns the absence cell, used when a point produces no result.
func VoidArg() Argument { return Argument{kind: KindVoid} }

// BoolArg wraps a boolean.
func BoolArg(b bool) Argument { return Argument{kind: KindBool, b: b} }

// DoubleArg wraps a floating-point number.
func DoubleArg(d float64) Argument { return Argument{kind: KindDouble, d: d} }

// IntArg wraps an integer.
func IntArg(i int) Argument { return Argument{kind: KindInt, i: i} }

// StringArg wraps a string.
func StringArg(s string) Argument { return Argument{kind: KindString, s: s} }

// PointerArg wraps an opaque host pointer.
func PointerArg(p any) Argument { return Argument{kind: KindPointer, p: p} }

// EventArg wraps a borrowed event reference.
func EventArg(ev *script.Event) Argument { return Argument{kind: KindEvent, ev: ev} }

// FuncArg wraps a borrowed callable reference.
func FuncArg(fn *script.Func) Argument { return Argument{kind: KindFunc, fn: fn} }

// FrameArg wraps a borrowed call frame reference.
func FrameArg(fr *script.Frame) Argument { return Argument{kind: KindFrame, frm: fr} }

// ValArg wraps a borrowed script value reference.
func ValArg(v *script.Val) Argument { return Argument{kind: KindVal, v: v} }

// ValListArg wraps a borrowed script value list.
func ValListArg(vl script.ValList) Argument { return Argument{kind: KindValList, vl: vl} }

// FuncResultArg wraps a call-interception result. The Handled flag inside
// distinguishes "not interested" from "handled with an empty value".
func FuncResultArg(r script.FuncResult) Argument { return Argument{kind: KindFuncResult, res: r} }

// Kind returns the cell's tag.
func (a Argument) Kind() Kind { return a.kind }

func (a Argument) check(want Kind) {
	if a.kind != want {
		panic(fmt.Sprintf("hook: argument is %s, accessed as %s", a.kind, want))
	}
}

// Bool returns the boolean payload. Panics unless the kind is KindBool.
func (a Argument) Bool() bool { a.check(KindBool); return a.b }

// Double returns the floating-point payload. Panics unless the kind is KindDouble.
func (a Argument) Double() float64 { a.check(KindDouble); return a.d }

// Int returns the integer payload. Panics unless the kind is KindInt.
func (a Argument) Int() int { a.check(KindInt); return a.i }

// Str returns the string payload. Panics unless the kind is KindString.
func (a Argument) Str() string { a.check(KindString); return a.s }

// Pointer returns the opaque pointer payload. Panics unless the kind is KindPointer.
func (a Argument) Pointer() any { a.check(KindPointer); return a.p }

// Event returns the event payload. Panics unless the kind is KindEvent.
func (a Argument) Event() *script.Event { a.check(KindEvent); return a.ev }

// Func returns the callable payload. Panics unless the kind is KindFunc.
func (a Argument) Func() *script.Func { a.check(KindFunc); return a.fn }

// Frame returns the frame payload. Panics unless the kind is KindFrame.
func (a Argument) Frame() *script.Frame { a.check(KindFrame); return a.frm }

// Val returns the script value payload. Panics unless the kind is KindVal.
func (a Argument) Val() *script.Val { a.check(KindVal); return a.v }

// ValList returns the value list payload. Panics unless the kind is KindValList.
func (a Argument) ValList() script.ValList { a.check(KindValList); return a.vl }

// FuncResult returns the call result payload. Panics unless the kind is KindFuncResult.
func (a Argument) FuncResult() script.FuncResult { a.check(KindFuncResult); return a.res }

// String renders the cell for diagnostics. Pointer-like payloads render as
// a parenthesized address; the format is stable within a process run but
// carries no semantic meaning.
func (a Argument) String() string {
	switch a.kind {
	case KindVoid:
		return "<void>"
	case KindBool:
		if a.b {
			return "true"
		}
		return "false"
	case KindDouble:
		return fmt.Sprintf("%g", a.d)
	case KindInt:
		return fmt.Sprintf("%d", a.i)
	case KindString:
		return a.s
	case KindPointer:
		return fmt.Sprintf("(%p)", a.p)
	case KindEvent:
		return fmt.Sprintf("%s%s", a.ev.Name, a.ev.Args)
	case KindFunc:
		return a.fn.Name
	case KindFrame:
		return fmt.Sprintf("(%p)", a.frm)
	case KindVal:
		return a.v.String()
	case KindValList:
		return a.vl.String()
	case KindFuncResult:
		if !a.res.Handled {
			return "<not handled>"
		}
		if a.res.Val == nil {
			return "<handled, no value>"
		}
		return a.res.Val.String()
	default:
		return "<unknown>"
	}
}

// Describe writes the cell's rendering to a text sink.
func (a Argument) Describe(w io.Writer) {
	io.WriteString(w, a.String())
}
