// Package runtime holds the data model the interpreter operates on: the
// tagged Value union, the per-frame operand stack and local variables, the
// class-scoped static field area, and the call stack that owns frames and
// drives the fetch-decode-execute loop.
package runtime

import "fmt"

// Kind tags the payload a Value actually carries. Opcodes do no type
// checking of their own; a Value is a closed union rather
// than several parallel typed stacks precisely so loads, stores, and
// returns can move raw values around without the interpreter caring what
// they are until an opcode that cares (arithmetic, a typed store) inspects
// them.
type Kind uint8

const (
	KindInt Kind = iota
	KindLong
	KindFloat
	KindDouble
	KindReference
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindReference:
		return "reference"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is the runtime representation of every quantity the interpreter
// pushes, pops, stores, and returns.
type Value struct {
	kind Kind
	i    int32
	l    int64
	f    float32
	d    float64
	ref  string
	arr  []Value
}

// Int constructs an Int(i32) value.
func Int(v int32) Value { return Value{kind: KindInt, i: v} }

// Long constructs a Long(i64) value.
func Long(v int64) Value { return Value{kind: KindLong, l: v} }

// Float constructs a Float(f32) value.
func Float(v float32) Value { return Value{kind: KindFloat, f: v} }

// Double constructs a Double(f64) value.
func Double(v float64) Value { return Value{kind: KindDouble, d: v} }

// Reference constructs a Reference value, an opaque name standing in for
// object identity (this interpreter never allocates real objects).
func Reference(name string) Value { return Value{kind: KindReference, ref: name} }

// Null is the reference value representing a null object reference.
var Null = Reference("")

// IsNull reports whether a reference value is null. Only meaningful for
// KindReference values.
func (v Value) IsNull() bool { return v.kind == KindReference && v.ref == "" }

// Array constructs an Array value owning the given sequence.
func Array(elems []Value) Value { return Value{kind: KindArray, arr: elems} }

// Kind reports the value's tag.
func (v Value) Kind() Kind { return v.kind }

// Int returns the value's payload reinterpreted as Int. The caller is
// responsible for knowing the value actually holds an Int; see the comment
// on Kind for why opcodes don't check this themselves.
func (v Value) Int() int32 { return v.i }

// Long returns the value's payload as Long.
func (v Value) Long() int64 { return v.l }

// Float32 returns the value's payload as Float.
func (v Value) Float32() float32 { return v.f }

// Float64 returns the value's payload as Double.
func (v Value) Float64() float64 { return v.d }

// Ref returns the value's reference name.
func (v Value) Ref() string { return v.ref }

// Elems returns the backing sequence of an Array value.
func (v Value) Elems() []Value { return v.arr }

// IsWide reports whether this value occupies two consecutive local-variable
// slots (Long and Double do; everything else occupies one).
func (v Value) IsWide() bool { return v.kind == KindLong || v.kind == KindDouble }

// String renders a value the way System.out.println would format it.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindLong:
		return fmt.Sprintf("%d", v.l)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindDouble:
		return fmt.Sprintf("%g", v.d)
	case KindReference:
		return v.ref
	case KindArray:
		return fmt.Sprintf("[array len=%d]", len(v.arr))
	default:
		return "<invalid value>"
	}
}
