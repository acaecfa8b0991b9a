package interpreter

import (
	"fmt"
	"os"

	"github.com/adehart/jvmlite/classfile"
	"github.com/adehart/jvmlite/runtime"
)

// execStatic implements getstatic/putstatic against the runtime data area,
// keyed the way runtime.FieldKey builds it ("<class>.<field>"). getstatic
// special-cases java/lang/System.out, the shimmed PrintStream receiver; any
// other field that nothing ever wrote to is a silent no-op, per spec §4.2 —
// the stack is left exactly as it was, nothing is pushed.
func (d *Dispatcher) execStatic(frame *runtime.Frame, cp classfile.ConstantPool, rda *runtime.RuntimeDataArea, opcode uint8) {
	index := frame.ReadU2()
	class, name, _ := cp.Fieldref(index)
	key := runtime.FieldKey(class, name)

	switch opcode {
	case GETSTATIC:
		if class == "java/lang/System" && name == "out" {
			frame.Stack.Push(runtime.Reference("System.out"))
			return
		}
		if v, ok := rda.Get(key); ok {
			frame.Stack.Push(v)
		}
	case PUTSTATIC:
		rda.Put(key, frame.Stack.Pop())
	}
}

// execInvoke implements invokevirtual (a built-in shim for
// PrintStream.println/print, the only instance method this interpreter ever
// runs; any other class is a no-op diagnosed to stderr rather than a fatal
// error, per spec §4.2), invokestatic (which pushes a real new frame and
// lets CallStack.Run drive it), and invokespecial (a documented no-op: it
// pops its receiver and arguments and otherwise does nothing, since
// constructor bodies and super calls are out of scope).
func (d *Dispatcher) execInvoke(cs *runtime.CallStack, class *classfile.ClassFile, frame *runtime.Frame, opcode uint8) (runtime.StepResult, error) {
	cp := class.ConstantPool
	index := frame.ReadU2()
	className, methodName, descriptor := cp.Methodref(index)

	switch opcode {
	case INVOKEVIRTUAL:
		if className == "java/io/PrintStream" && (methodName == "println" || methodName == "print") {
			d.execPrint(frame, descriptor, methodName == "println")
			return runtime.StepResult{Signal: runtime.SigContinue}, nil
		}
		fmt.Fprintf(os.Stderr, "jvmlite: unsupported invokevirtual %s.%s%s, skipping\n", className, methodName, descriptor)
		return runtime.StepResult{Signal: runtime.SigContinue}, nil

	case INVOKESPECIAL:
		n := classfile.ParamCount(descriptor)
		for j := 0; j < n; j++ {
			frame.Stack.Pop()
		}
		frame.Stack.Pop() // receiver
		return runtime.StepResult{Signal: runtime.SigContinue}, nil

	case INVOKESTATIC:
		return d.invokeStatic(cs, class, frame, methodName, descriptor)
	}

	return runtime.StepResult{Signal: runtime.SigContinue}, nil
}

// invokeStatic resolves methodName in the single loaded class (lookup is by
// name only; overload resolution by descriptor is not attempted, see
// DESIGN.md), places the popped arguments into the callee's locals honoring
// wide-slot placement, and pushes the new frame for CallStack.Run to pick
// up on its next iteration.
func (d *Dispatcher) invokeStatic(cs *runtime.CallStack, class *classfile.ClassFile, frame *runtime.Frame, methodName, descriptor string) (runtime.StepResult, error) {
	method := class.GetMethod(methodName, "")
	if method == nil {
		return runtime.StepResult{}, fmt.Errorf("method not found: %s.%s%s", class.ClassName(), methodName, descriptor)
	}
	code := method.GetCodeAttribute(class.ConstantPool)
	if code == nil {
		return runtime.StepResult{}, fmt.Errorf("method has no code: %s.%s%s", class.ClassName(), methodName, descriptor)
	}

	kinds := classfile.ParamKinds(descriptor)
	args := make([]runtime.Value, len(kinds))
	for j := len(kinds) - 1; j >= 0; j-- {
		args[j] = frame.Stack.Pop()
	}

	newFrame := runtime.NewFrame(methodName, int(code.MaxStack), int(code.MaxLocals), code.Code)
	slot := 0
	for j, kind := range kinds {
		newFrame.Locals.Set(slot, args[j])
		if classfile.IsWide(kind) {
			slot += 2
		} else {
			slot++
		}
	}

	if err := cs.Push(newFrame); err != nil {
		return runtime.StepResult{}, err
	}
	d.traceCall(methodName, cs.Depth()-1)

	return runtime.StepResult{Signal: runtime.SigContinue}, nil
}

// execPrint backs the PrintStream.println/print shim: pop the argument per
// the descriptor (println()V has none), discard the receiver, and write the
// formatted text.
func (d *Dispatcher) execPrint(frame *runtime.Frame, descriptor string, newline bool) {
	var text string
	switch descriptor {
	case "()V":
		text = ""
	case "(Z)V":
		if frame.Stack.Pop().Int() != 0 {
			text = "true"
		} else {
			text = "false"
		}
	case "(C)V":
		text = string(rune(frame.Stack.Pop().Int()))
	case "(J)V":
		text = fmt.Sprintf("%d", frame.Stack.Pop().Long())
	case "(F)V":
		text = fmt.Sprintf("%g", frame.Stack.Pop().Float32())
	case "(D)V":
		text = fmt.Sprintf("%g", frame.Stack.Pop().Float64())
	case "(Ljava/lang/String;)V", "(Ljava/lang/Object;)V":
		text = frame.Stack.Pop().Ref()
	default:
		// (I)V and any other single-slot numeric descriptor
		text = fmt.Sprintf("%d", frame.Stack.Pop().Int())
	}
	frame.Stack.Pop() // the System.out receiver

	if newline {
		fmt.Fprintln(d.Out, text)
	} else {
		fmt.Fprint(d.Out, text)
	}
}
