package interpreter

import (
	"fmt"

	"github.com/adehart/jvmlite/runtime"
)

// execArray implements the two array operations in scope: aaload (read a
// reference element) and arraylength. Creating arrays or storing into them
// is out of scope; the only array this interpreter ever sees is the argv
// array the Vm synthesizes before driving main.
func (d *Dispatcher) execArray(frame *runtime.Frame, opcode uint8) (runtime.StepResult, error) {
	stack := frame.Stack

	switch opcode {
	case AALOAD:
		index := stack.Pop().Int()
		arrRef := stack.Pop()
		if arrRef.Kind() != runtime.KindArray {
			return runtime.StepResult{}, fmt.Errorf("NullPointerException: aaload on non-array")
		}
		elems := arrRef.Elems()
		if index < 0 || int(index) >= len(elems) {
			return runtime.StepResult{}, fmt.Errorf("ArrayIndexOutOfBoundsException: %d", index)
		}
		stack.Push(elems[index])

	case ARRAYLENGTH:
		arrRef := stack.Pop()
		if arrRef.Kind() != runtime.KindArray {
			return runtime.StepResult{}, fmt.Errorf("NullPointerException: arraylength on non-array")
		}
		stack.Push(runtime.Int(int32(len(arrRef.Elems()))))
	}

	return runtime.StepResult{Signal: runtime.SigContinue}, nil
}
