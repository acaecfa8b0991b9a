package interpreter

import "github.com/adehart/jvmlite/runtime"

// execControl implements conditional and unconditional branches plus every
// return variant. Branch targets are relative to the branching opcode's own
// address: PC-3 for the 3-byte if*/goto forms, PC-5 for goto_w's wide form.
// Returns only pop the value (when there is one) and report SigReturn;
// CallStack.Run is the one that pops the frame and forwards the value onto
// the caller's stack.
func (d *Dispatcher) execControl(cs *runtime.CallStack, frame *runtime.Frame, opcode uint8) (runtime.StepResult, error) {
	stack := frame.Stack

	switch opcode {
	case IFEQ:
		offset := frame.ReadI2()
		if stack.Pop().Int() == 0 {
			frame.PC = frame.PC - 3 + int(offset)
		}
	case IFNE:
		offset := frame.ReadI2()
		if stack.Pop().Int() != 0 {
			frame.PC = frame.PC - 3 + int(offset)
		}
	case IFLT:
		offset := frame.ReadI2()
		if stack.Pop().Int() < 0 {
			frame.PC = frame.PC - 3 + int(offset)
		}
	case IFGE:
		offset := frame.ReadI2()
		if stack.Pop().Int() >= 0 {
			frame.PC = frame.PC - 3 + int(offset)
		}
	case IFGT:
		offset := frame.ReadI2()
		if stack.Pop().Int() > 0 {
			frame.PC = frame.PC - 3 + int(offset)
		}
	case IFLE:
		offset := frame.ReadI2()
		if stack.Pop().Int() <= 0 {
			frame.PC = frame.PC - 3 + int(offset)
		}

	case IF_ICMPEQ:
		offset := frame.ReadI2()
		v2, v1 := stack.Pop().Int(), stack.Pop().Int()
		if v1 == v2 {
			frame.PC = frame.PC - 3 + int(offset)
		}
	case IF_ICMPNE:
		offset := frame.ReadI2()
		v2, v1 := stack.Pop().Int(), stack.Pop().Int()
		if v1 != v2 {
			frame.PC = frame.PC - 3 + int(offset)
		}
	case IF_ICMPLT:
		offset := frame.ReadI2()
		v2, v1 := stack.Pop().Int(), stack.Pop().Int()
		if v1 < v2 {
			frame.PC = frame.PC - 3 + int(offset)
		}
	case IF_ICMPGE:
		offset := frame.ReadI2()
		v2, v1 := stack.Pop().Int(), stack.Pop().Int()
		if v1 >= v2 {
			frame.PC = frame.PC - 3 + int(offset)
		}
	case IF_ICMPGT:
		offset := frame.ReadI2()
		v2, v1 := stack.Pop().Int(), stack.Pop().Int()
		if v1 > v2 {
			frame.PC = frame.PC - 3 + int(offset)
		}
	case IF_ICMPLE:
		offset := frame.ReadI2()
		v2, v1 := stack.Pop().Int(), stack.Pop().Int()
		if v1 <= v2 {
			frame.PC = frame.PC - 3 + int(offset)
		}

	case IFNULL:
		offset := frame.ReadI2()
		if stack.Pop().IsNull() {
			frame.PC = frame.PC - 3 + int(offset)
		}
	case IFNONNULL:
		offset := frame.ReadI2()
		if !stack.Pop().IsNull() {
			frame.PC = frame.PC - 3 + int(offset)
		}

	case GOTO:
		offset := frame.ReadI2()
		frame.PC = frame.PC - 3 + int(offset)
	case GOTO_W:
		offset := frame.ReadI4()
		frame.PC = frame.PC - 5 + int(offset)

	case RETURN:
		d.traceReturn(frame.MethodName, cs.Depth()-1, runtime.Value{}, false)
		return runtime.StepResult{Signal: runtime.SigReturn}, nil

	case IRETURN, LRETURN, FRETURN, DRETURN, ARETURN:
		v := stack.Pop()
		d.traceReturn(frame.MethodName, cs.Depth()-1, v, true)
		return runtime.StepResult{Signal: runtime.SigReturn, Value: v, HasValue: true}, nil
	}

	return runtime.StepResult{Signal: runtime.SigContinue}, nil
}
