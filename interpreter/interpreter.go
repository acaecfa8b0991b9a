// Package interpreter implements the InstructionExecutor: a stateless
// dispatcher that walks one method's bytecode, mutating the frame, the
// runtime data area, and (for invokestatic) the call stack.
//
// Organized the way the teacher splits this concern across files:
//   - interpreter.go: Dispatcher, the runtime.Executor implementation, and the dispatch/trace glue
//   - opcodes.go: opcode constants and the category table
//   - instructions_const.go: constant-pushing instructions (iconst, ldc, ldc2_w, ...)
//   - instructions_load.go / instructions_store.go: local-variable traffic
//   - instructions_math.go: arithmetic, bitwise, conversions, iinc
//   - instructions_control.go: branches and returns
//   - instructions_array.go: aaload, arraylength
//   - instructions_invoke.go: getstatic/putstatic, invokevirtual/invokestatic/invokespecial
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/adehart/jvmlite/classfile"
	"github.com/adehart/jvmlite/runtime"
)

// Dispatcher is the InstructionExecutor: stateless with respect to the
// bytecode it interprets, but it carries the handful of cross-cutting
// concerns every invocation needs (where println writes to, and whether
// call tracing is enabled).
type Dispatcher struct {
	Out         io.Writer
	Verbose     bool
	Debug       bool
	trace       bool
	traceMethod string
}

// New creates a Dispatcher that writes System.out traffic to stdout.
func New() *Dispatcher {
	return &Dispatcher{Out: os.Stdout}
}

// SetTrace enables call/return tracing for a single method name.
func (d *Dispatcher) SetTrace(methodName string) {
	d.trace = true
	d.traceMethod = methodName
}

var _ runtime.Executor = (*Dispatcher)(nil)

// Step dispatches one opcode against frame, routing by category to the
// instructions_*.go family that implements it.
func (d *Dispatcher) Step(cs *runtime.CallStack, class *classfile.ClassFile, rda *runtime.RuntimeDataArea, frame *runtime.Frame, opcode uint8) (runtime.StepResult, error) {
	if d.Debug {
		d.printFrameDebug(frame, opcode)
	} else if d.Verbose {
		fmt.Fprintf(d.Out, "[%s] PC=%d opcode=0x%02X\n", frame.MethodName, frame.PC-1, opcode)
	}

	switch categoryOf(opcode) {
	case catConst:
		return runtime.StepResult{Signal: runtime.SigContinue}, d.execConst(frame, class.ConstantPool, opcode)

	case catLoad:
		d.execLoad(frame, opcode)
		return runtime.StepResult{Signal: runtime.SigContinue}, nil

	case catStore:
		d.execStore(frame, opcode)
		return runtime.StepResult{Signal: runtime.SigContinue}, nil

	case catMath:
		return runtime.StepResult{Signal: runtime.SigContinue}, d.execMath(frame, opcode)

	case catControl:
		return d.execControl(cs, frame, opcode)

	case catArray:
		return d.execArray(frame, opcode)

	case catStatic:
		d.execStatic(frame, class.ConstantPool, rda, opcode)
		return runtime.StepResult{Signal: runtime.SigContinue}, nil

	case catInvoke:
		return d.execInvoke(cs, class, frame, opcode)

	default:
		return runtime.StepResult{}, fmt.Errorf("unimplemented opcode: 0x%02X at PC=%d in %s", opcode, frame.PC-1, frame.MethodName)
	}
}

func (d *Dispatcher) traceCall(methodName string, depth int) {
	if !d.trace || (d.traceMethod != "" && d.traceMethod != methodName) {
		return
	}
	fmt.Fprintf(d.Out, "%s→ %s\n", indent(depth), methodName)
}

func (d *Dispatcher) traceReturn(methodName string, depth int, v runtime.Value, hasValue bool) {
	if !d.trace || (d.traceMethod != "" && d.traceMethod != methodName) {
		return
	}
	if hasValue {
		fmt.Fprintf(d.Out, "%s← %s = %s\n", indent(depth), methodName, v.String())
	} else {
		fmt.Fprintf(d.Out, "%s← %s\n", indent(depth), methodName)
	}
}

func indent(depth int) string {
	out := ""
	for i := 0; i < depth; i++ {
		out += "  "
	}
	return out
}

func (d *Dispatcher) printFrameDebug(frame *runtime.Frame, opcode uint8) {
	fmt.Fprintf(d.Out, "[%s] PC=%d opcode=0x%02X stack=%s\n", frame.MethodName, frame.PC-1, opcode, frame.Stack.String())
}
