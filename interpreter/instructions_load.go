package interpreter

import "github.com/adehart/jvmlite/runtime"

// execLoad implements iload/lload/fload/dload/aload and their _0.._3
// fixed-index variants: read a local-variable slot, push it.
func (d *Dispatcher) execLoad(frame *runtime.Frame, opcode uint8) {
	var index int
	switch opcode {
	case ILOAD, LLOAD, FLOAD, DLOAD, ALOAD:
		index = int(frame.ReadU1())
	case ILOAD_0, LLOAD_0, FLOAD_0, DLOAD_0, ALOAD_0:
		index = 0
	case ILOAD_1, LLOAD_1, FLOAD_1, DLOAD_1, ALOAD_1:
		index = 1
	case ILOAD_2, LLOAD_2, FLOAD_2, DLOAD_2, ALOAD_2:
		index = 2
	case ILOAD_3, LLOAD_3, FLOAD_3, DLOAD_3, ALOAD_3:
		index = 3
	}

	v, ok := frame.Locals.Get(index)
	if !ok {
		v = runtime.Int(0)
	}
	frame.Stack.Push(v)
}
